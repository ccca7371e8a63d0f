package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lens_graph_nodes_total",
			Help: "Total number of nodes in the loaded graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lens_graph_edges_total",
			Help: "Total number of edges in the loaded graph",
		},
	)

	r.GraphLocalNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lens_graph_local_nodes_total",
			Help: "Number of session-local nodes added through the lens",
		},
	)

	r.GraphLocalEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lens_graph_local_edges_total",
			Help: "Number of session-local edges added through the lens",
		},
	)

	r.GraphMutationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lens_graph_mutations_total",
			Help: "Total number of local graph mutations",
		},
		[]string{"mutation", "status"},
	)
}
