package layout

import (
	"math"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

const (
	// minDistance floors pairwise distances so coincident nodes do not
	// blow up the repulsion term.
	minDistance = 1.0

	// boundsMargin keeps nodes this far inside the viewport bounds.
	boundsMargin = 50.0
)

// Simulator is the continuous force-directed integrator, run once per
// animation frame while the layout mode is force. It is deterministic for a
// given parameter set, graph and starting positions: nodes are visited in
// input order, pairs as (i, j) with i < j, edges in input order.
type Simulator struct {
	params ForceParams
	bounds Bounds
}

// NewSimulator creates an integrator over the given viewport.
func NewSimulator(params ForceParams, bounds Bounds) *Simulator {
	return &Simulator{params: params, bounds: bounds}
}

// Params returns the current coefficients.
func (s *Simulator) Params() ForceParams { return s.params }

// SetParams swaps the coefficients; takes effect on the next step.
func (s *Simulator) SetParams(p ForceParams) { s.params = p }

// SetBounds swaps the viewport extent; takes effect on the next step.
func (s *Simulator) SetBounds(b Bounds) { s.bounds = b }

// Step advances the simulation by one frame:
//
//  1. pull every node toward the viewport center (centerGravity),
//  2. push every unordered pair apart, inversely proportional to squared
//     distance (repulsion, floored at minDistance),
//  3. pull resolved edge endpoints together, proportional to distance and
//     scaled by attraction * linkStrength * (weight + 0.5),
//  4. damp velocity, integrate, clamp into bounds,
//  5. snap pinned axes to their pin and zero that axis' velocity,
//     overriding everything above.
//
// Self-loops have zero distance and produce zero net force.
func (s *Simulator) Step(g *model.Graph) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}

	p := s.params
	cx, cy := s.bounds.Center()

	for _, n := range nodes {
		n.VX += (cx - n.X) * p.CenterGravity
		n.VY += (cy - n.Y) * p.CenterGravity
	}

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			dist := hypot(dx, dy)
			if dist < minDistance {
				dist = minDistance
			}
			force := p.Repulsion / (dist * dist)
			fx := dx / dist * force
			fy := dy / dist * force
			a.VX += fx
			a.VY += fy
			b.VX -= fx
			b.VY -= fy
		}
	}

	for _, e := range g.Edges() {
		if !g.Resolved(e) {
			continue
		}
		src, _ := g.Node(e.Source)
		dst, _ := g.Node(e.Target)
		dx := dst.X - src.X
		dy := dst.Y - src.Y
		dist := hypot(dx, dy)
		if dist == 0 {
			// Self-loop or exactly coincident endpoints.
			continue
		}
		force := p.Attraction * p.LinkStrength * (e.Weight + 0.5) * dist
		fx := dx / dist * force
		fy := dy / dist * force
		src.VX += fx
		src.VY += fy
		dst.VX -= fx
		dst.VY -= fy
	}

	loX, hiX := boundsMargin, s.bounds.Width-boundsMargin
	loY, hiY := boundsMargin, s.bounds.Height-boundsMargin

	for _, n := range nodes {
		n.VX *= p.Damping
		n.VY *= p.Damping
		n.X = clamp(n.X+n.VX, loX, hiX)
		n.Y = clamp(n.Y+n.VY, loY, hiY)

		if n.PinX != nil {
			n.X = *n.PinX
			n.VX = 0
		}
		if n.PinY != nil {
			n.Y = *n.PinY
			n.VY = 0
		}
	}
}

func hypot(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}
