package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

func TestParseModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeForce, ModeRadial, ModeHierarchical} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := ParseMode("spiral")
	assert.Error(t, err)

	assert.True(t, ModeForce.Continuous())
	assert.False(t, ModeRadial.Continuous())
	assert.False(t, ModeHierarchical.Continuous())
}

func TestForcePlacementCentralRegion(t *testing.T) {
	nodes := make([]*model.Node, 50)
	for i := range nodes {
		nodes[i] = &model.Node{ID: string(rune('a' + i))}
	}
	g, err := model.NewGraph(nodes, nil)
	require.NoError(t, err)

	NewForcePlacement(testBounds, 42).Place(g)

	cx, cy := testBounds.Center()
	for _, n := range g.Nodes() {
		assert.InDelta(t, cx, n.X, testBounds.Width*centralRegion/2)
		assert.InDelta(t, cy, n.Y, testBounds.Height*centralRegion/2)
		assert.Zero(t, n.VX)
		assert.Zero(t, n.VY)
	}
}

func TestForcePlacementSeedDeterminism(t *testing.T) {
	build := func() *model.Graph {
		g, err := model.NewGraph([]*model.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)
		require.NoError(t, err)
		return g
	}
	g1, g2 := build(), build()
	NewForcePlacement(testBounds, 7).Place(g1)
	NewForcePlacement(testBounds, 7).Place(g2)

	for i, n := range g1.Nodes() {
		assert.Equal(t, n.X, g2.Nodes()[i].X)
		assert.Equal(t, n.Y, g2.Nodes()[i].Y)
	}
}

func TestRadialLayoutEquidistantFromCenter(t *testing.T) {
	nodes := make([]*model.Node, 6)
	for i := range nodes {
		nodes[i] = &model.Node{ID: string(rune('a' + i))}
	}
	g, err := model.NewGraph(nodes, nil)
	require.NoError(t, err)

	NewRadialLayout(testBounds).Place(g)

	cx, cy := testBounds.Center()
	want := testBounds.Min() * radialFraction
	for _, n := range g.Nodes() {
		got := math.Hypot(n.X-cx, n.Y-cy)
		assert.InDelta(t, want, got, 1e-9)
	}

	// First node sits at angle zero, i.e. due east of center.
	first := g.Nodes()[0]
	assert.InDelta(t, cx+want, first.X, 1e-9)
	assert.InDelta(t, cy, first.Y, 1e-9)
}

func TestHierarchicalLayoutTierRows(t *testing.T) {
	nodes := []*model.Node{
		{ID: "s", Tier: model.TierShadow},
		{ID: "h", Tier: model.TierHyper},
		{ID: "r1", Tier: model.TierRegular},
		{ID: "r2", Tier: model.TierRegular},
	}
	g, err := model.NewGraph(nodes, nil)
	require.NoError(t, err)

	NewHierarchicalLayout(testBounds, 1).Place(g)

	h, _ := g.Node("h")
	r1, _ := g.Node("r1")
	r2, _ := g.Node("r2")
	s, _ := g.Node("s")

	// Hyper above regular above shadow, with room for jitter.
	assert.Less(t, h.Y, r1.Y-hierarchicalJitter)
	assert.Less(t, r1.Y, s.Y-hierarchicalJitter)

	// Same bucket shares a row; ties keep input order left to right.
	assert.InDelta(t, r1.Y, r2.Y, 2*hierarchicalJitter)
	assert.Less(t, r1.X, r2.X)
}

func TestPlacementEmptyGraph(t *testing.T) {
	g, err := model.NewGraph(nil, nil)
	require.NoError(t, err)

	for _, mode := range []Mode{ModeForce, ModeRadial, ModeHierarchical} {
		require.NotPanics(t, func() {
			NewStrategy(mode, testBounds, 1).Place(g)
		})
	}
}
