package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/starrating/pkg/domain"
)

const namespace = "starrating"

// Metrics holds the Prometheus collectors fed by widget events.
type Metrics struct {
	Previews        prometheus.Counter
	Commits         *prometheus.CounterVec
	Leaves          prometheus.Counter
	CommittedRating prometheus.Histogram
}

// NewMetrics creates and registers widget metrics on the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Previews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "previews_total",
			Help:      "Total number of hover previews shown.",
		}),
		Commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commits_total",
			Help:      "Total number of accepted clicks, by kind.",
		}, []string{"kind"}),
		Leaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaves_total",
			Help:      "Total number of previews dropped by the pointer leaving.",
		}),
		CommittedRating: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "committed_rating",
			Help:      "Distribution of committed ratings.",
			Buckets:   prometheus.LinearBuckets(0.5, 0.5, 20),
		}),
	}

	reg.MustRegister(m.Previews, m.Commits, m.Leaves, m.CommittedRating)
	return m
}

// Hooks returns lifecycle hooks that record every event.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPreview: func(_ context.Context, _ *domain.RatingEvent) {
			m.Previews.Inc()
		},
		OnLeave: func(_ context.Context, _ *domain.RatingEvent) {
			m.Leaves.Inc()
		},
		OnCommit: func(_ context.Context, e *domain.RatingEvent) {
			if e.Deselected {
				m.Commits.WithLabelValues("deselect").Inc()
				return
			}
			m.Commits.WithLabelValues("select").Inc()
			m.CommittedRating.Observe(e.Rating)
		},
	}
}
