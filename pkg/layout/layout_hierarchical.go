package layout

import (
	"math/rand"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

const (
	hierarchicalPadding = 50
	hierarchicalJitter  = 8
)

// HierarchicalLayout buckets nodes by tier rank (hyper first, release last,
// ties broken by input order) and lays each bucket out as a row, vertical
// position proportional to bucket rank plus small jitter. This layout is
// static: the continuous integrator never runs on it.
type HierarchicalLayout struct {
	bounds Bounds
	rng    *rand.Rand
}

// NewHierarchicalLayout creates a seeded hierarchical layout.
func NewHierarchicalLayout(bounds Bounds, seed int64) *HierarchicalLayout {
	return &HierarchicalLayout{bounds: bounds, rng: rand.New(rand.NewSource(seed))}
}

// Place assigns positions and zeroes velocities.
func (hl *HierarchicalLayout) Place(g *model.Graph) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}

	tiers := model.Tiers()
	buckets := make([][]*model.Node, len(tiers))
	for _, n := range nodes {
		rank := n.Tier.Rank()
		buckets[rank] = append(buckets[rank], n)
	}

	rowHeight := (hl.bounds.Height - 2*hierarchicalPadding) / float64(len(tiers))
	rowWidth := hl.bounds.Width - 2*hierarchicalPadding

	for rank, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		y := hierarchicalPadding + float64(rank)*rowHeight + rowHeight/2
		spacing := rowWidth / float64(len(bucket)+1)

		for i, n := range bucket {
			n.X = hierarchicalPadding + spacing*float64(i+1)
			n.Y = y + (hl.rng.Float64()-0.5)*hierarchicalJitter
			n.VX, n.VY = 0, 0
		}
	}
}
