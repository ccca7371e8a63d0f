package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

var testBounds = Bounds{Width: 800, Height: 600}

func simGraph(t *testing.T, edges []*model.Edge, nodes ...*model.Node) *model.Graph {
	t.Helper()
	g, err := model.NewGraph(nodes, edges)
	require.NoError(t, err)
	return g
}

func dist(a, b *model.Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestStepRepulsionPushesApart(t *testing.T) {
	// Two unconnected nodes 10 units apart must separate after one step.
	a := &model.Node{ID: "a", X: 395, Y: 300}
	b := &model.Node{ID: "b", X: 405, Y: 300}
	g := simGraph(t, nil, a, b)

	params := DefaultForceParams()
	params.Repulsion = 500
	params.Damping = 0.9
	params.CenterGravity = 0 // isolate the repulsion term

	sim := NewSimulator(params, testBounds)
	before := dist(a, b)
	sim.Step(g)

	assert.Greater(t, dist(a, b), before)
	assert.False(t, a.Pinned())
	assert.False(t, b.Pinned())
}

func TestStepAttractionPullsEdgeEndpoints(t *testing.T) {
	a := &model.Node{ID: "a", X: 100, Y: 300}
	b := &model.Node{ID: "b", X: 700, Y: 300}
	g := simGraph(t, []*model.Edge{{Source: "a", Target: "b", Kind: model.KindSemantic, Weight: 2}}, a, b)

	params := DefaultForceParams()
	params.Repulsion = 1 // keep repulsion negligible at this distance
	params.CenterGravity = 0

	sim := NewSimulator(params, testBounds)
	before := dist(a, b)
	sim.Step(g)

	assert.Less(t, dist(a, b), before)
}

func TestStepHeavierEdgesPullHarder(t *testing.T) {
	run := func(weight float64) float64 {
		a := &model.Node{ID: "a", X: 100, Y: 300}
		b := &model.Node{ID: "b", X: 700, Y: 300}
		g := simGraph(t, []*model.Edge{{Source: "a", Target: "b", Kind: model.KindSemantic, Weight: weight}}, a, b)

		params := DefaultForceParams()
		params.Repulsion = 1
		params.CenterGravity = 0
		NewSimulator(params, testBounds).Step(g)
		return dist(a, b)
	}

	assert.Less(t, run(5), run(0.5))
}

func TestStepPinOverridesForces(t *testing.T) {
	a := &model.Node{ID: "a", X: 390, Y: 300}
	b := &model.Node{ID: "b", X: 410, Y: 300}
	a.Pin(390, 300)
	g := simGraph(t, []*model.Edge{{Source: "a", Target: "b", Kind: model.KindParent, Weight: 1}}, a, b)

	params := DefaultForceParams()
	params.Repulsion = 5000 // strong forces must still lose to the pin
	sim := NewSimulator(params, testBounds)
	sim.Step(g)

	assert.Equal(t, 390.0, a.X)
	assert.Equal(t, 300.0, a.Y)
	assert.Zero(t, a.VX)
	assert.Zero(t, a.VY)
	assert.NotEqual(t, 410.0, b.X, "unpinned node still moves")
}

func TestStepSingleAxisPin(t *testing.T) {
	a := &model.Node{ID: "a", X: 200, Y: 200}
	b := &model.Node{ID: "b", X: 210, Y: 200}
	x := 200.0
	a.PinX = &x
	g := simGraph(t, nil, a, b)

	sim := NewSimulator(DefaultForceParams(), testBounds)
	sim.Step(g)

	assert.Equal(t, 200.0, a.X)
	assert.Zero(t, a.VX)
	assert.NotZero(t, a.VY, "free axis keeps integrating")
}

func TestStepSelfLoopZeroForce(t *testing.T) {
	a := &model.Node{ID: "a", X: 400, Y: 300}
	g := simGraph(t, []*model.Edge{{Source: "a", Target: "a", Kind: model.KindSemantic, Weight: 10}}, a)

	params := DefaultForceParams()
	params.CenterGravity = 0
	sim := NewSimulator(params, testBounds)

	require.NotPanics(t, func() { sim.Step(g) })
	assert.Equal(t, 400.0, a.X)
	assert.Equal(t, 300.0, a.Y)
}

func TestStepCoincidentNodesDoNotExplode(t *testing.T) {
	a := &model.Node{ID: "a", X: 400, Y: 300}
	b := &model.Node{ID: "b", X: 400, Y: 300}
	g := simGraph(t, nil, a, b)

	sim := NewSimulator(DefaultForceParams(), testBounds)
	sim.Step(g)

	assert.False(t, math.IsNaN(a.X) || math.IsInf(a.X, 0))
	assert.False(t, math.IsNaN(b.X) || math.IsInf(b.X, 0))
}

func TestStepClampsToBoundsMargin(t *testing.T) {
	a := &model.Node{ID: "a", X: 60, Y: 60}
	a.VX = -500
	a.VY = -500
	g := simGraph(t, nil, a)

	sim := NewSimulator(DefaultForceParams(), testBounds)
	sim.Step(g)

	assert.GreaterOrEqual(t, a.X, boundsMargin)
	assert.GreaterOrEqual(t, a.Y, boundsMargin)
}

func TestStepEmptyGraph(t *testing.T) {
	g := simGraph(t, nil)
	sim := NewSimulator(DefaultForceParams(), testBounds)
	require.NotPanics(t, func() { sim.Step(g) })
}

func TestStepDeterministic(t *testing.T) {
	build := func() *model.Graph {
		nodes := []*model.Node{
			{ID: "a", X: 100, Y: 100},
			{ID: "b", X: 500, Y: 200},
			{ID: "c", X: 300, Y: 400},
		}
		g, err := model.NewGraph(nodes, []*model.Edge{
			{Source: "a", Target: "b", Kind: model.KindParent, Weight: 1},
			{Source: "b", Target: "c", Kind: model.KindSemantic, Weight: 2},
		})
		require.NoError(t, err)
		return g
	}

	g1, g2 := build(), build()
	sim := NewSimulator(DefaultForceParams(), testBounds)
	for i := 0; i < 10; i++ {
		sim.Step(g1)
		sim.Step(g2)
	}
	for i, n := range g1.Nodes() {
		m := g2.Nodes()[i]
		assert.Equal(t, n.X, m.X)
		assert.Equal(t, n.Y, m.Y)
	}
}
