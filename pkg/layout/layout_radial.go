package layout

import (
	"math"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

// radialFraction sizes the circle relative to the smaller viewport
// dimension.
const radialFraction = 0.35

// RadialLayout places nodes evenly around a circle, ordered by input order.
type RadialLayout struct {
	bounds Bounds
}

// NewRadialLayout creates a radial layout.
func NewRadialLayout(bounds Bounds) *RadialLayout {
	return &RadialLayout{bounds: bounds}
}

// Place arranges nodes on the circle and zeroes velocities.
func (rl *RadialLayout) Place(g *model.Graph) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}

	cx, cy := rl.bounds.Center()
	radius := rl.bounds.Min() * radialFraction
	angleStep := 2 * math.Pi / float64(len(nodes))

	for i, n := range nodes {
		angle := float64(i) * angleStep
		n.X = cx + radius*math.Cos(angle)
		n.Y = cy + radius*math.Sin(angle)
		n.VX, n.VY = 0, 0
	}
}
