// Package lens ties the graph model, layout engine, filter pipeline and
// interaction controller into one owned engine instance. All simulation
// state lives on the Engine; nothing is shared at package level, so two
// engines never interfere.
//
// The Engine is single-goroutine and not safe for concurrent use. The embedding UI drives it from its own event loop;
// headless embedders can use StartLoop, which steps it from a dedicated
// goroutine and must then be the only caller.
package lens

import (
	"context"
	"io"
	"time"

	"github.com/dd0wney/cluso-lens/pkg/algorithms"
	"github.com/dd0wney/cluso-lens/pkg/config"
	"github.com/dd0wney/cluso-lens/pkg/filter"
	"github.com/dd0wney/cluso-lens/pkg/interaction"
	"github.com/dd0wney/cluso-lens/pkg/layout"
	"github.com/dd0wney/cluso-lens/pkg/logging"
	"github.com/dd0wney/cluso-lens/pkg/metrics"
	"github.com/dd0wney/cluso-lens/pkg/model"
	"github.com/dd0wney/cluso-lens/pkg/render"
)

// Options carries the optional collaborators an Engine can be built
// with. Zero values get replaced with no-op or default instances.
type Options struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Engine is the owned simulation context for one loaded graph.
type Engine struct {
	cfg   *config.Config
	graph *model.Graph

	mode   layout.Mode
	bounds layout.Bounds
	seed   int64
	sim    *layout.Simulator

	pipeline   *filter.Pipeline
	camera     *interaction.Camera
	controller *interaction.Controller

	loop *layout.Scheduler

	log logging.Logger
	reg *metrics.Registry
}

// New builds an engine around an already-constructed graph, runs the
// initial placement pass for the configured layout mode and assigns
// clusters.
func New(cfg *config.Config, g *model.Graph, opts Options) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	reg := opts.Metrics
	if reg == nil {
		reg = metrics.NewRegistry()
	}

	e := &Engine{
		cfg:      cfg,
		graph:    g,
		mode:     cfg.LayoutMode(),
		bounds:   cfg.Bounds(),
		seed:     cfg.Layout.Seed,
		sim:      layout.NewSimulator(cfg.Layout.Force, cfg.Bounds()),
		pipeline: filter.NewPipeline(),
		camera:   interaction.NewCamera(cfg.Layout.Width, cfg.Layout.Height),
		log:      log.With(logging.Component("lens")),
		reg:      reg,
	}
	e.controller = interaction.NewController(g, e.camera)

	e.place()
	e.Recluster(cfg.Clusters.Count)
	e.updateSizeGauges()

	e.log.Info("engine ready",
		logging.LayoutMode(e.mode.String()),
		logging.Count(g.NodeCount()))

	return e
}

// Graph returns the engine's graph.
func (e *Engine) Graph() *model.Graph { return e.graph }

// Camera returns the engine's camera.
func (e *Engine) Camera() *interaction.Camera { return e.camera }

// Controller returns the engine's interaction controller.
func (e *Engine) Controller() *interaction.Controller { return e.controller }

// Pipeline returns the engine's filter pipeline for the UI to mutate.
func (e *Engine) Pipeline() *filter.Pipeline { return e.pipeline }

// Mode returns the active layout mode.
func (e *Engine) Mode() layout.Mode { return e.mode }

// ForceParams returns the live integrator coefficients.
func (e *Engine) ForceParams() layout.ForceParams { return e.sim.Params() }

// SetForceParams swaps the integrator coefficients mid-flight.
func (e *Engine) SetForceParams(p layout.ForceParams) { e.sim.SetParams(p) }

// place runs the initial placement pass for the current mode.
func (e *Engine) place() {
	start := time.Now()
	layout.NewStrategy(e.mode, e.bounds, e.seed).Place(e.graph)
	e.reg.RecordLayoutPass(e.mode.String(), time.Since(start))
}

// SetMode switches the layout mode, re-placing all nodes. Velocities
// are zeroed so a switch back to force mode starts from rest.
func (e *Engine) SetMode(mode layout.Mode) {
	if mode == e.mode {
		return
	}
	e.mode = mode
	for _, n := range e.graph.Nodes() {
		n.VX, n.VY = 0, 0
	}
	e.place()
	e.log.Info("layout mode switched", logging.LayoutMode(mode.String()))
}

// Step advances the physics simulation by one frame. Radial and
// hierarchical layouts are static, so stepping outside force mode is a
// no-op.
func (e *Engine) Step() {
	if !e.mode.Continuous() {
		return
	}
	start := time.Now()
	e.sim.Step(e.graph)
	e.reg.RecordSimStep(time.Since(start))
}

// Recluster reruns the k-center cluster pass with k centroids.
func (e *Engine) Recluster(k int) {
	start := time.Now()
	algorithms.AssignClusters(e.graph, k)
	e.reg.RecordClusterPass(time.Since(start))
}

// PointerDown forwards a press to the controller and records the
// interactions it produced: the event itself, a path query when a
// picking click completed a start/end pair, and a local edge mutation
// when a connecting click committed one.
func (e *Engine) PointerDown(sx, sy float64) {
	pathArmed := e.controller.PathArmed()
	prevStart, prevEnd := e.controller.PathEndpoints()
	pending := e.controller.PendingSource()

	e.controller.PointerDown(sx, sy)
	e.reg.RecordInteraction("pointer_down")

	if pathArmed {
		start, end := e.controller.PathEndpoints()
		if end != "" && (start != prevStart || end != prevEnd) {
			e.reg.RecordPathQuery(len(e.controller.Path()))
		}
	}
	if pending != "" && e.controller.ConnectArmed() && e.controller.PendingSource() == "" {
		e.reg.RecordMutation("add_edge", "ok")
		e.updateSizeGauges()
	}
}

// PointerMove forwards a motion event to the controller.
func (e *Engine) PointerMove(sx, sy float64) {
	e.controller.PointerMove(sx, sy)
	e.reg.RecordInteraction("pointer_move")
}

// PointerUp forwards a release to the controller.
func (e *Engine) PointerUp() {
	e.controller.PointerUp()
	e.reg.RecordInteraction("pointer_up")
}

// Zoom scales the camera by factor, anchored at the viewport center.
func (e *Engine) Zoom(factor float64) {
	e.camera.ZoomBy(factor)
	e.reg.RecordInteraction("zoom")
}

// Frame assembles everything a renderer needs for the current state:
// the filtered visible set plus camera and interaction highlights.
func (e *Engine) Frame() *render.Frame {
	start := time.Now()
	visible := e.pipeline.Apply(e.graph)
	f := &render.Frame{
		Visible:       visible,
		Camera:        e.camera,
		SelectedID:    e.controller.Selected(),
		HoveredID:     e.controller.Hovered(),
		Path:          e.controller.Path(),
		PendingSource: e.controller.PendingSource(),
	}
	e.reg.RecordFrame(time.Since(start), len(visible.Nodes), len(visible.Edges))
	return f
}

// AddNode authors a session-local node at the viewport center.
func (e *Engine) AddNode(label string, tier model.Tier) *model.Node {
	cx, cy := e.camera.ScreenToWorld(e.camera.Width/2, e.camera.Height/2)
	n := e.graph.AddLocalNode(label, tier, cx, cy)
	e.reg.RecordMutation("add_node", "ok")
	e.updateSizeGauges()
	e.log.Info("local node added", logging.NodeID(n.ID))
	return n
}

// RemoveNode removes a session-local node and its incident edges.
func (e *Engine) RemoveNode(id string) error {
	if err := e.graph.RemoveLocalNode(id); err != nil {
		e.reg.RecordMutation("remove_node", "error")
		return err
	}
	e.reg.RecordMutation("remove_node", "ok")
	e.updateSizeGauges()
	e.log.Info("local node removed", logging.NodeID(id))
	return nil
}

func (e *Engine) updateSizeGauges() {
	var localNodes, localEdges int
	for _, n := range e.graph.Nodes() {
		if n.Local {
			localNodes++
		}
	}
	for _, ed := range e.graph.Edges() {
		if ed.Local {
			localEdges++
		}
	}
	e.reg.UpdateGraphSize(e.graph.NodeCount(), e.graph.EdgeCount(), localNodes, localEdges)
}

// ExportJSON writes the current visible set as a structured document.
func (e *Engine) ExportJSON(w io.Writer) error {
	doc := render.BuildDocument(e.Frame())
	if err := render.WriteJSON(doc, w); err != nil {
		e.reg.RecordExport("json", "error")
		return err
	}
	e.reg.RecordExport("json", "ok")
	return nil
}

// ExportSnappy writes the current visible set as snappy-compressed JSON.
func (e *Engine) ExportSnappy(w io.Writer) error {
	doc := render.BuildDocument(e.Frame())
	if err := render.WriteSnappy(doc, w); err != nil {
		e.reg.RecordExport("snappy", "error")
		return err
	}
	e.reg.RecordExport("snappy", "ok")
	return nil
}

// ExportPNG writes a rasterized snapshot of the current visible set.
func (e *Engine) ExportPNG(w io.Writer, opts render.RasterOptions) error {
	if err := render.WritePNG(e.Frame(), w, opts); err != nil {
		e.reg.RecordExport("png", "error")
		return err
	}
	e.reg.RecordExport("png", "ok")
	return nil
}

// StartLoop runs the physics loop on a background scheduler for
// headless embedders that have no UI event loop of their own. The
// caller must not touch the engine from other goroutines while the
// loop runs.
func (e *Engine) StartLoop(ctx context.Context) error {
	if e.loop == nil {
		e.loop = layout.NewScheduler(e.cfg.Layout.TickInterval(), e.Step)
	}
	return e.loop.Start(ctx)
}

// StopLoop stops the background physics loop and waits for it to exit.
func (e *Engine) StopLoop() {
	if e.loop != nil {
		e.loop.Stop()
	}
}

// LoopRunning reports whether the background physics loop is active.
func (e *Engine) LoopRunning() bool {
	return e.loop != nil && e.loop.Running()
}
