package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLayoutMetrics() {
	r.SimStepsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "lens_sim_steps_total",
			Help: "Total number of physics integration steps",
		},
	)

	r.SimStepDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lens_sim_step_duration_seconds",
			Help:    "Physics step duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	r.LayoutPassesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lens_layout_passes_total",
			Help: "Total number of initial placement passes",
		},
		[]string{"mode"},
	)

	r.LayoutPassDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lens_layout_pass_duration_seconds",
			Help:    "Initial placement pass duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"mode"},
	)

	r.ClusterPassesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "lens_cluster_passes_total",
			Help: "Total number of cluster assignment passes",
		},
	)

	r.ClusterPassDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lens_cluster_pass_duration_seconds",
			Help:    "Cluster assignment pass duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)
}
