package runtime_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/starrating/internal/runtime"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSurface records painted frames.
type MockSurface struct {
	mock.Mock
}

func (m *MockSurface) Paint(frame domain.Frame) {
	m.Called(frame)
}

func newConfig(mutate func(*domain.Config)) domain.Config {
	cfg := domain.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return cfg
}

// recorder captures host callback invocations.
type recorder struct {
	ratings []float64
}

func (r *recorder) onChange(v float64) {
	r.ratings = append(r.ratings, v)
}

func TestMachine_InitialState(t *testing.T) {
	t.Run("Idle", func(t *testing.T) {
		m := runtime.NewMachine(newConfig(func(c *domain.Config) { c.InitialRating = 2 }))
		assert.Equal(t, domain.ModeIdle, m.Mode())
		assert.Equal(t, 2.0, m.CommittedRating())
		_, ok := m.PreviewRating()
		assert.False(t, ok)
	})

	t.Run("ReadOnly", func(t *testing.T) {
		m := runtime.NewMachine(newConfig(func(c *domain.Config) { c.ReadOnly = true }))
		assert.Equal(t, domain.ModeReadOnly, m.Mode())
	})

	t.Run("Clamps Initial Rating", func(t *testing.T) {
		m := runtime.NewMachine(newConfig(func(c *domain.Config) { c.InitialRating = 7 }))
		assert.Equal(t, 5.0, m.CommittedRating())
	})

	t.Run("Rounds Initial Rating Without Half Stars", func(t *testing.T) {
		m := runtime.NewMachine(newConfig(func(c *domain.Config) { c.InitialRating = 3.5 }))
		assert.Equal(t, 4.0, m.CommittedRating())
	})
}

func TestMachine_Hover(t *testing.T) {
	rec := &recorder{}
	m := runtime.NewMachine(
		newConfig(func(c *domain.Config) { c.InitialRating = 1 }),
		runtime.WithOnRatingChange(rec.onChange),
	)

	m.OnPointerMove(domain.At(4, 0.9))
	assert.Equal(t, 5.0, m.DisplayedRating())
	assert.Equal(t, domain.ModeHovering, m.Mode())
	assert.Equal(t, 1.0, m.CommittedRating())
	assert.Empty(t, rec.ratings, "preview must not reach the host callback")

	m.OnPointerLeave()
	assert.Equal(t, 1.0, m.DisplayedRating())
	assert.Equal(t, domain.ModeIdle, m.Mode())
	assert.Empty(t, rec.ratings)
}

func TestMachine_HoverDisabled(t *testing.T) {
	m := runtime.NewMachine(newConfig(func(c *domain.Config) {
		c.Hover = false
		c.InitialRating = 3
	}))

	m.OnPointerMove(domain.At(0, 0.1))
	assert.Equal(t, 3.0, m.DisplayedRating())
	assert.Equal(t, domain.ModeIdle, m.Mode())

	// Clicks still work.
	m.OnClick(domain.At(0, 0.1))
	assert.Equal(t, 1.0, m.CommittedRating())
}

func TestMachine_PointerLeaveIsIdempotent(t *testing.T) {
	rec := &recorder{}
	var leaves int
	m := runtime.NewMachine(
		newConfig(func(c *domain.Config) { c.InitialRating = 2 }),
		runtime.WithOnRatingChange(rec.onChange),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnLeave: func(context.Context, *domain.RatingEvent) { leaves++ },
		}),
	)

	m.OnPointerMove(domain.At(3, 0.5))
	m.OnPointerLeave()
	once := m.Snapshot()
	m.OnPointerLeave()

	assert.Equal(t, once, m.Snapshot())
	assert.Equal(t, 2.0, m.DisplayedRating())
	assert.Equal(t, 1, leaves)
	assert.Empty(t, rec.ratings)
}

func TestMachine_DeselectLaw(t *testing.T) {
	for _, half := range []bool{false, true} {
		rec := &recorder{}
		m := runtime.NewMachine(
			newConfig(func(c *domain.Config) { c.HalfRating = half }),
			runtime.WithOnRatingChange(rec.onChange),
		)

		sample := domain.At(2, 0.3)
		m.OnClick(sample)
		r := m.CommittedRating()

		m.OnClick(sample)
		assert.Equal(t, 0.0, m.CommittedRating())

		m.OnClick(sample)
		assert.Equal(t, r, m.CommittedRating())

		assert.Equal(t, []float64{r, 0, r}, rec.ratings)
	}
}

func TestMachine_ClickKeepsPreview(t *testing.T) {
	m := runtime.NewMachine(newConfig(nil))

	m.OnPointerMove(domain.At(3, 0.5))
	m.OnClick(domain.At(3, 0.5))
	assert.Equal(t, domain.ModeHovering, m.Mode())
	assert.Equal(t, 4.0, m.CommittedRating())

	// Deselect while hovering: preview still drives the display.
	m.OnClick(domain.At(3, 0.5))
	assert.Equal(t, 0.0, m.CommittedRating())
	assert.Equal(t, 4.0, m.DisplayedRating())

	m.OnPointerLeave()
	assert.Equal(t, 0.0, m.DisplayedRating())
}

func TestMachine_ReadOnlyLaw(t *testing.T) {
	rec := &recorder{}
	surface := &MockSurface{}
	var hooked int
	count := func(context.Context, *domain.RatingEvent) { hooked++ }

	m := runtime.NewMachine(
		newConfig(func(c *domain.Config) {
			c.ReadOnly = true
			c.InitialRating = 4.4
		}),
		runtime.WithOnRatingChange(rec.onChange),
		runtime.WithSurface(surface),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{OnPreview: count, OnLeave: count, OnCommit: count}),
	)

	initial := m.CommittedRating()
	assert.Equal(t, 4.0, initial)

	for i := 0; i < 5; i++ {
		m.OnPointerMove(domain.At(i, 0.2))
		m.OnClick(domain.At(i, 0.8))
		m.OnPointerLeave()
		m.OnClick(domain.At(i, 0.2))
	}

	assert.Equal(t, initial, m.CommittedRating())
	assert.Equal(t, initial, m.DisplayedRating())
	assert.Equal(t, domain.ModeReadOnly, m.Mode())
	assert.Empty(t, rec.ratings)
	assert.Zero(t, hooked)
	surface.AssertNotCalled(t, "Paint", mock.Anything)
}

func TestMachine_WholeStarInvariant(t *testing.T) {
	m := runtime.NewMachine(newConfig(nil))

	for i := -1; i <= 6; i++ {
		for f := 0.0; f <= 1.0; f += 0.1 {
			m.OnPointerMove(domain.At(i, f))
			assert.Equal(t, float64(int(m.DisplayedRating())), m.DisplayedRating())
			m.OnClick(domain.At(i, f))
			assert.Equal(t, float64(int(m.CommittedRating())), m.CommittedRating())
			assert.GreaterOrEqual(t, m.CommittedRating(), 0.0)
			assert.LessOrEqual(t, m.CommittedRating(), 5.0)
		}
	}
}

func TestMachine_SurfaceFrames(t *testing.T) {
	surface := &MockSurface{}
	surface.On("Paint", mock.Anything).Return()

	m := runtime.NewMachine(
		newConfig(func(c *domain.Config) { c.HalfRating = true }),
		runtime.WithID("w-1"),
		runtime.WithSurface(surface),
	)

	m.OnPointerMove(domain.At(2, 0.2))
	m.OnPointerMove(domain.At(2, 0.3)) // same preview, no repaint
	m.OnClick(domain.At(2, 0.2))
	m.OnPointerLeave()

	surface.AssertNumberOfCalls(t, "Paint", 3)

	preview := surface.Calls[0].Arguments.Get(0).(domain.Frame)
	assert.Equal(t, "w-1", preview.WidgetID)
	assert.Equal(t, 2.5, preview.Displayed)
	assert.Equal(t, []float64{1, 1, 0.5, 0, 0}, preview.Fills)
	assert.Equal(t, domain.ModeHovering, preview.Mode)
	assert.Equal(t, domain.DefaultColor, preview.Color)

	left := surface.Calls[2].Arguments.Get(0).(domain.Frame)
	assert.Equal(t, 2.5, left.Displayed)
	assert.Equal(t, domain.ModeIdle, left.Mode)
}

func TestMachine_LifecycleHooks(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var events []domain.RatingEvent
	record := func(_ context.Context, e *domain.RatingEvent) { events = append(events, *e) }

	m := runtime.NewMachine(
		newConfig(func(c *domain.Config) { c.InitialRating = 3 }),
		runtime.WithID("w-9"),
		runtime.WithClock(func() time.Time { return fixed }),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{OnPreview: record, OnLeave: record, OnCommit: record}),
	)

	m.OnPointerMove(domain.At(2, 0.9))
	m.OnClick(domain.At(2, 0.9))
	m.OnPointerLeave()

	assert.Equal(t, []domain.RatingEvent{
		{Timestamp: fixed, Type: domain.EventPreview, WidgetID: "w-9", Rating: 3, Previous: 3},
		{Timestamp: fixed, Type: domain.EventCommit, WidgetID: "w-9", Rating: 0, Previous: 3, Deselected: true},
		{Timestamp: fixed, Type: domain.EventLeave, WidgetID: "w-9", Rating: 0, Previous: 0},
	}, events)
}
