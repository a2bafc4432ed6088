package engine

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathviz/search"
)

// Metrics holds the Prometheus collectors updated by Engine.Run.
type Metrics struct {
	runs     *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
	pathLen  *prometheus.HistogramVec
}

// NewMetrics registers the engine collectors with reg. Passing
// prometheus.DefaultRegisterer twice panics, as with any duplicate
// registration; tests should use a fresh prometheus.NewRegistry().
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathviz",
			Name:      "search_runs_total",
			Help:      "Searches run, by algorithm and outcome.",
		}, []string{"algorithm", "success"}),
		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathviz",
			Name:      "search_expanded_nodes",
			Help:      "Nodes expanded per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathviz",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock search duration, step hook included.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
		}, []string{"algorithm"}),
		pathLen: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathviz",
			Name:      "search_path_cells",
			Help:      "Path length in cells of successful searches.",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) observe(r search.Result) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(r.Algorithm, strconv.FormatBool(r.Success)).Inc()
	m.expanded.WithLabelValues(r.Algorithm).Observe(float64(r.Expanded))
	m.duration.WithLabelValues(r.Algorithm).Observe(r.Elapsed.Seconds())
	if r.Success {
		m.pathLen.WithLabelValues(r.Algorithm).Observe(float64(len(r.Path)))
	}
}
