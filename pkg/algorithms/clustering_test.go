package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

// twoHubs builds two star graphs bridged by a single edge:
//
//	a1 a2 a3 - hubA --- hubB - b1 b2 b3
func twoHubs(t *testing.T) *model.Graph {
	t.Helper()
	edges := []*model.Edge{
		{Source: "hubA", Target: "a1", Kind: model.KindParent},
		{Source: "hubA", Target: "a2", Kind: model.KindParent},
		{Source: "hubA", Target: "a3", Kind: model.KindParent},
		{Source: "hubB", Target: "b1", Kind: model.KindParent},
		{Source: "hubB", Target: "b2", Kind: model.KindParent},
		{Source: "hubB", Target: "b3", Kind: model.KindParent},
		{Source: "hubA", Target: "hubB", Kind: model.KindCollaboration},
	}
	return pathGraph(t, edges, "hubA", "a1", "a2", "a3", "hubB", "b1", "b2", "b3")
}

func clusterOf(t *testing.T, g *model.Graph, id string) int {
	t.Helper()
	n, ok := g.Node(id)
	require.True(t, ok)
	return n.Cluster
}

func TestAssignClustersTwoHubs(t *testing.T) {
	g := twoHubs(t)
	AssignClusters(g, 2)

	// The hubs have the highest degree, so they seed the centroids;
	// hubA comes first in input order and gets cluster 0.
	assert.Equal(t, 0, clusterOf(t, g, "hubA"))
	assert.Equal(t, 1, clusterOf(t, g, "hubB"))

	for _, id := range []string{"a1", "a2", "a3"} {
		assert.Equal(t, 0, clusterOf(t, g, id))
	}
	for _, id := range []string{"b1", "b2", "b3"} {
		assert.Equal(t, 1, clusterOf(t, g, id))
	}
}

func TestAssignClustersDeterministic(t *testing.T) {
	g1, g2 := twoHubs(t), twoHubs(t)
	AssignClusters(g1, 3)
	AssignClusters(g2, 3)

	for i, n := range g1.Nodes() {
		assert.Equal(t, n.Cluster, g2.Nodes()[i].Cluster, "node %s", n.ID)
	}
}

func TestAssignClustersUnreachableNodes(t *testing.T) {
	// An isthmus longer than the hop cap: far ends beyond 10 hops from
	// every centroid still get a deterministic assignment.
	ids := make([]string, 15)
	edges := make([]*model.Edge, 0, 14)
	for i := range ids {
		ids[i] = string(rune('a' + i))
		if i > 0 {
			edges = append(edges, &model.Edge{Source: ids[i-1], Target: ids[i], Kind: model.KindParent})
		}
	}
	g := pathGraph(t, edges, ids...)

	AssignClusters(g, 1)
	for _, n := range g.Nodes() {
		assert.Equal(t, 0, n.Cluster)
	}
}

func TestAssignClustersDegenerateInputs(t *testing.T) {
	empty := pathGraph(t, nil)
	require.NotPanics(t, func() { AssignClusters(empty, 3) })

	g := pathGraph(t, nil, "a", "b")
	AssignClusters(g, 0)
	assert.Equal(t, model.ClusterUnassigned, clusterOf(t, g, "a"), "k=0 leaves clusters undefined")

	// k larger than the node count degrades to one centroid per node.
	AssignClusters(g, 10)
	assert.NotEqual(t, model.ClusterUnassigned, clusterOf(t, g, "a"))
	assert.NotEqual(t, model.ClusterUnassigned, clusterOf(t, g, "b"))
}

func TestAssignClustersTieBreaksByInputOrder(t *testing.T) {
	// All degrees equal: centroids come from input order, and the node
	// equidistant from both centroids joins the lower index.
	g := pathGraph(t, []*model.Edge{
		{Source: "x", Target: "m", Kind: model.KindParent},
		{Source: "m", Target: "y", Kind: model.KindParent},
	}, "x", "y", "m")

	AssignClusters(g, 2)

	// x and y both have degree 1, m degree 2: m is centroid 0, x centroid 1.
	assert.Equal(t, 0, clusterOf(t, g, "m"))
	assert.Equal(t, 1, clusterOf(t, g, "x"))
	// y is 1 hop from m (cluster 0) and 2 from x.
	assert.Equal(t, 0, clusterOf(t, g, "y"))
}
