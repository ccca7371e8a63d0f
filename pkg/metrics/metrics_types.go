// Package metrics exposes Prometheus instrumentation for the lens engine.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph Metrics
	GraphNodesTotal      prometheus.Gauge
	GraphEdgesTotal      prometheus.Gauge
	GraphLocalNodesTotal prometheus.Gauge
	GraphLocalEdgesTotal prometheus.Gauge
	GraphMutationsTotal  *prometheus.CounterVec

	// Layout Metrics
	SimStepsTotal       prometheus.Counter
	SimStepDuration     prometheus.Histogram
	LayoutPassesTotal   *prometheus.CounterVec
	LayoutPassDuration  *prometheus.HistogramVec
	ClusterPassesTotal  prometheus.Counter
	ClusterPassDuration prometheus.Histogram

	// Interaction Metrics
	InteractionEventsTotal *prometheus.CounterVec
	PathQueriesTotal       *prometheus.CounterVec
	PathLengthHops         prometheus.Histogram

	// Render Metrics
	FramesTotal       prometheus.Counter
	FrameDuration     prometheus.Histogram
	VisibleNodesTotal prometheus.Gauge
	VisibleEdgesTotal prometheus.Gauge
	ExportsTotal      *prometheus.CounterVec

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGraphMetrics()
	r.initLayoutMetrics()
	r.initInteractionMetrics()
	r.initRenderMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
