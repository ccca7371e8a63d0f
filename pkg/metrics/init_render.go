package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRenderMetrics() {
	r.FramesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "lens_frames_total",
			Help: "Total number of rendered frames",
		},
	)

	r.FrameDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lens_frame_duration_seconds",
			Help:    "Frame assembly and render duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.016, 0.033, 0.1},
		},
	)

	r.VisibleNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lens_visible_nodes_total",
			Help: "Number of nodes visible after filtering",
		},
	)

	r.VisibleEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lens_visible_edges_total",
			Help: "Number of edges visible after filtering",
		},
	)

	r.ExportsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lens_exports_total",
			Help: "Total number of view exports",
		},
		[]string{"format", "status"},
	)
}
