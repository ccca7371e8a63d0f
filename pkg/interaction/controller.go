// Package interaction turns pointer events into graph mutations: panning,
// node dragging via pins, path picking and live edge authoring. All methods
// run on the frame loop goroutine; mutations are visible to the very next
// physics step.
package interaction

import (
	"fmt"

	"github.com/dd0wney/cluso-lens/pkg/algorithms"
	"github.com/dd0wney/cluso-lens/pkg/model"
)

// hitTolerance pads every node's visual radius during hit-testing, in
// world units.
const hitTolerance = 3.0

// Mode is the controller's pointer state.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModePanning
	ModeDraggingNode
	ModePathPicking
	ModeConnecting
)

// String returns the mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePanning:
		return "panning"
	case ModeDraggingNode:
		return "dragging"
	case ModePathPicking:
		return "path-picking"
	case ModeConnecting:
		return "connecting"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Controller is the interaction state machine for one graph view.
type Controller struct {
	graph  *model.Graph
	camera *Camera

	mode Mode

	// Armed modes: path picking and connecting are toggles that change
	// what a pointer-down on a node means.
	pathArmed    bool
	connectArmed bool

	// panning
	lastSX, lastSY float64

	// dragging
	dragNode *model.Node

	// path picking
	pathStart string
	pathEnd   string
	path      []string

	// connecting
	pendingSource string
	edgeKind      model.Kind

	selected string
	hovered  string
}

// NewController creates a controller over a graph and camera.
func NewController(g *model.Graph, cam *Camera) *Controller {
	return &Controller{graph: g, camera: cam, edgeKind: model.KindSemantic}
}

// Mode returns the current pointer mode.
func (c *Controller) Mode() Mode { return c.mode }

// Selected returns the selected node id, or "".
func (c *Controller) Selected() string { return c.selected }

// Hovered returns the hovered node id, or "".
func (c *Controller) Hovered() string { return c.hovered }

// Path returns the current picked path, empty when unset or unreachable.
func (c *Controller) Path() []string { return c.path }

// PathEndpoints returns the armed path endpoints ("" when unset).
func (c *Controller) PathEndpoints() (string, string) { return c.pathStart, c.pathEnd }

// PendingSource returns the armed connect source, or "".
func (c *Controller) PendingSource() string { return c.pendingSource }

// EdgeKind returns the kind new edges are authored with.
func (c *Controller) EdgeKind() model.Kind { return c.edgeKind }

// SetEdgeKind selects the relationship kind for connect mode.
func (c *Controller) SetEdgeKind(k model.Kind) { c.edgeKind = k }

// ArmPathPicking toggles path-pick mode. Arming clears any previous pick;
// disarming keeps the computed path on screen.
func (c *Controller) ArmPathPicking(on bool) {
	c.pathArmed = on
	if on {
		c.connectArmed = false
		c.pathStart, c.pathEnd, c.path = "", "", nil
	}
}

// ArmConnecting toggles connect mode.
func (c *Controller) ArmConnecting(on bool) {
	c.connectArmed = on
	if on {
		c.pathArmed = false
		c.pendingSource = ""
	}
}

// PathArmed reports whether path picking is armed.
func (c *Controller) PathArmed() bool { return c.pathArmed }

// ConnectArmed reports whether connect mode is armed.
func (c *Controller) ConnectArmed() bool { return c.connectArmed }

// HitTest returns the first node whose tier radius plus tolerance contains
// the world point, preferring no particular order among overlapping
// candidates beyond first match in input order.
func (c *Controller) HitTest(wx, wy float64) *model.Node {
	for _, n := range c.graph.Nodes() {
		r := n.Tier.Radius() + hitTolerance
		dx, dy := wx-n.X, wy-n.Y
		if dx*dx+dy*dy <= r*r {
			return n
		}
	}
	return nil
}

// PointerDown handles a press at screen coordinates.
func (c *Controller) PointerDown(sx, sy float64) {
	wx, wy := c.camera.ScreenToWorld(sx, sy)
	hit := c.HitTest(wx, wy)

	if hit == nil {
		// Empty space starts a pan regardless of armed modes.
		c.mode = ModePanning
		c.lastSX, c.lastSY = sx, sy
		return
	}

	c.selected = hit.ID

	switch {
	case c.pathArmed:
		c.pickPathNode(hit.ID)
	case c.connectArmed:
		c.connectNode(hit.ID)
	default:
		c.mode = ModeDraggingNode
		c.dragNode = hit
		hit.Pin(wx, wy)
	}
}

// PointerMove handles motion at screen coordinates.
func (c *Controller) PointerMove(sx, sy float64) {
	switch c.mode {
	case ModePanning:
		c.camera.PanBy(sx-c.lastSX, sy-c.lastSY)
		c.lastSX, c.lastSY = sx, sy
	case ModeDraggingNode:
		wx, wy := c.camera.ScreenToWorld(sx, sy)
		c.dragNode.Pin(wx, wy)
	default:
		wx, wy := c.camera.ScreenToWorld(sx, sy)
		if hit := c.HitTest(wx, wy); hit != nil {
			c.hovered = hit.ID
		} else {
			c.hovered = ""
		}
	}
}

// PointerUp ends the current gesture. Dragged nodes lose their pin and
// rejoin the simulation.
func (c *Controller) PointerUp() {
	if c.mode == ModeDraggingNode && c.dragNode != nil {
		c.dragNode.Unpin()
		c.dragNode = nil
	}
	c.mode = ModeIdle
}

// pickPathNode advances the path-pick state machine: first click sets the
// start, second distinct click sets the end, a third click restarts from
// the clicked node.
func (c *Controller) pickPathNode(id string) {
	switch {
	case c.pathStart == "":
		c.pathStart = id
	case c.pathEnd == "" && id != c.pathStart:
		c.pathEnd = id
	default:
		c.pathStart, c.pathEnd, c.path = id, "", nil
	}
	if c.pathStart != "" && c.pathEnd != "" {
		c.path = algorithms.FindPath(c.graph, c.pathStart, c.pathEnd)
	}
}

// connectNode advances the connect state machine: first click records a
// pending source, second click on a different node commits a local edge of
// the selected kind and stays armed for another edge. Clicking the same
// node twice is a no-op.
func (c *Controller) connectNode(id string) {
	if c.pendingSource == "" {
		c.pendingSource = id
		return
	}
	if c.pendingSource == id {
		return
	}
	c.graph.AddLocalEdge(c.pendingSource, id, c.edgeKind, 1.0)
	c.pendingSource = ""
}
