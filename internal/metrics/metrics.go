// Package metrics exposes Prometheus collectors for A* searches and the
// engine hooks that feed them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridstar/astar"
)

const (
	namespace = "gridstar"
	subsystem = "search"
)

// Search holds the search collectors. All fields are safe for concurrent use.
type Search struct {
	Expansions     prometheus.Counter
	Discoveries    prometheus.Counter
	Replaces       prometheus.Counter
	Reopens        prometheus.Counter
	Outcomes       *prometheus.CounterVec
	PathCost       prometheus.Histogram
	Steps          prometheus.Histogram
	ActiveSessions prometheus.Gauge
}

// New registers the collectors with reg. Passing a fresh
// prometheus.NewRegistry keeps tests isolated from the default registry.
func New(reg prometheus.Registerer) *Search {
	factory := promauto.With(reg)

	return &Search{
		Expansions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "expansions_total",
			Help:      "Nodes moved to the explored set.",
		}),
		Discoveries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "discoveries_total",
			Help:      "Nodes added fresh to the frontier.",
		}),
		Replaces: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "replaces_total",
			Help:      "Frontier nodes replaced by a cheaper path.",
		}),
		Reopens: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reopens_total",
			Help:      "Explored nodes returned to the frontier by a cheaper path.",
		}),
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "outcomes_total",
			Help:      "Finished searches by terminal status.",
		}, []string{"status"}),
		PathCost: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "path_cost",
			Help:      "Cost of paths found.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Steps: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "steps",
			Help:      "Steps taken by finished searches.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active_sessions",
			Help:      "Searches currently held by the server.",
		}),
	}
}

// Options returns engine options that record into m.
func (m *Search) Options() []astar.Option {
	return []astar.Option{
		astar.WithOnExpand(func(*astar.Node) { m.Expansions.Inc() }),
		astar.WithOnDiscover(func(*astar.Node) { m.Discoveries.Inc() }),
		astar.WithOnReplace(func(_, _ *astar.Node) { m.Replaces.Inc() }),
		astar.WithOnReopen(func(_, _ *astar.Node) { m.Reopens.Inc() }),
		astar.WithOnFinish(m.observeFinish),
	}
}

func (m *Search) observeFinish(status astar.Status, steps int, terminal *astar.Node) {
	m.Outcomes.WithLabelValues(status.String()).Inc()
	m.Steps.Observe(float64(steps))
	if status == astar.StatusFound && terminal != nil {
		m.PathCost.Observe(float64(terminal.PathCost()))
	}
}
