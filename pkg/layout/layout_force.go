package layout

import (
	"math/rand"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

// centralRegion is the fraction of each viewport extent the initial force
// scatter stays inside.
const centralRegion = 0.6

// ForcePlacement scatters nodes in a central region, normally distributed
// around the viewport center. The continuous integrator takes over from
// there.
type ForcePlacement struct {
	bounds Bounds
	rng    *rand.Rand
}

// NewForcePlacement creates a seeded force scatter.
func NewForcePlacement(bounds Bounds, seed int64) *ForcePlacement {
	return &ForcePlacement{bounds: bounds, rng: rand.New(rand.NewSource(seed))}
}

// Place assigns starting positions and zeroes velocities.
func (fp *ForcePlacement) Place(g *model.Graph) {
	cx, cy := fp.bounds.Center()
	halfW := fp.bounds.Width * centralRegion / 2
	halfH := fp.bounds.Height * centralRegion / 2

	for _, n := range g.Nodes() {
		// Two sigma covers the region; samples beyond it are clamped.
		n.X = clamp(cx+fp.rng.NormFloat64()*halfW/2, cx-halfW, cx+halfW)
		n.Y = clamp(cy+fp.rng.NormFloat64()*halfH/2, cy-halfH, cy+halfH)
		n.VX, n.VY = 0, 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
