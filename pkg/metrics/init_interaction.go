package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initInteractionMetrics() {
	r.InteractionEventsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lens_interaction_events_total",
			Help: "Total number of pointer and keyboard interaction events",
		},
		[]string{"event"},
	)

	r.PathQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lens_path_queries_total",
			Help: "Total number of shortest path queries",
		},
		[]string{"status"},
	)

	r.PathLengthHops = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lens_path_length_hops",
			Help:    "Hop count of found shortest paths",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
}
