package metrics

import (
	"time"
)

// UpdateGraphSize updates the graph size gauges.
func (r *Registry) UpdateGraphSize(nodes, edges, localNodes, localEdges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
	r.GraphLocalNodesTotal.Set(float64(localNodes))
	r.GraphLocalEdgesTotal.Set(float64(localEdges))
}

// RecordMutation records a local graph mutation.
func (r *Registry) RecordMutation(mutation, status string) {
	r.GraphMutationsTotal.WithLabelValues(mutation, status).Inc()
}

// RecordSimStep records one physics integration step.
func (r *Registry) RecordSimStep(duration time.Duration) {
	r.SimStepsTotal.Inc()
	r.SimStepDuration.Observe(duration.Seconds())
}

// RecordLayoutPass records an initial placement pass for a layout mode.
func (r *Registry) RecordLayoutPass(mode string, duration time.Duration) {
	r.LayoutPassesTotal.WithLabelValues(mode).Inc()
	r.LayoutPassDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordClusterPass records a cluster assignment pass.
func (r *Registry) RecordClusterPass(duration time.Duration) {
	r.ClusterPassesTotal.Inc()
	r.ClusterPassDuration.Observe(duration.Seconds())
}

// RecordInteraction records a pointer or keyboard event.
func (r *Registry) RecordInteraction(event string) {
	r.InteractionEventsTotal.WithLabelValues(event).Inc()
}

// RecordPathQuery records a shortest path query and its result length.
// A path of length zero counts as not found.
func (r *Registry) RecordPathQuery(hops int) {
	if hops == 0 {
		r.PathQueriesTotal.WithLabelValues("not_found").Inc()
		return
	}
	r.PathQueriesTotal.WithLabelValues("found").Inc()
	r.PathLengthHops.Observe(float64(hops - 1))
}

// RecordFrame records one rendered frame and the visible set it drew.
func (r *Registry) RecordFrame(duration time.Duration, visibleNodes, visibleEdges int) {
	r.FramesTotal.Inc()
	r.FrameDuration.Observe(duration.Seconds())
	r.VisibleNodesTotal.Set(float64(visibleNodes))
	r.VisibleEdgesTotal.Set(float64(visibleEdges))
}

// RecordExport records a view export attempt.
func (r *Registry) RecordExport(format, status string) {
	r.ExportsTotal.WithLabelValues(format, status).Inc()
}
