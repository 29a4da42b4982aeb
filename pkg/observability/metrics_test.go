package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/starrating/internal/runtime"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/observability"
)

func TestMetrics_Hooks(t *testing.T) {
	// 1. Setup
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	cfg := domain.DefaultConfig()
	cfg.HalfRating = true
	m := runtime.NewMachine(cfg, runtime.WithLifecycleHooks(metrics.Hooks()))

	// 2. Drive the widget
	m.OnPointerMove(domain.At(2, 0.2)) // preview 2.5
	m.OnPointerMove(domain.At(2, 0.3)) // same preview, no event
	m.OnPointerMove(domain.At(3, 0.9)) // preview 4
	m.OnClick(domain.At(3, 0.9))       // select 4
	m.OnClick(domain.At(3, 0.9))       // deselect
	m.OnPointerLeave()
	m.OnPointerLeave() // no-op

	// 3. Assert
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Previews))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Leaves))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Commits.WithLabelValues("select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Commits.WithLabelValues("deselect")))

	count, err := testutil.GatherAndCount(reg, "starrating_committed_rating")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	observability.NewMetrics(reg)
	assert.Panics(t, func() { observability.NewMetrics(reg) })
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	m := runtime.NewMachine(domain.DefaultConfig(),
		runtime.WithID("w1"),
		runtime.WithLifecycleHooks(observability.LoggingHooks(logger)),
	)
	m.OnPointerMove(domain.At(1, 0.5))
	m.OnClick(domain.At(1, 0.5))

	out := buf.String()
	assert.NotContains(t, out, "rating_preview", "previews log at debug level")
	assert.Contains(t, out, "rating_commit")
	assert.Contains(t, out, "widget_id=w1")
	assert.Contains(t, out, "rating=2")
}
