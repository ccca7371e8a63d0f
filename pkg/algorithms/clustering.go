package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

const (
	// clusterHopCap bounds each centroid BFS on large or sparse graphs.
	clusterHopCap = 10

	// unreachableDistance ranks nodes the BFS never reached.
	unreachableDistance = clusterHopCap + 1
)

// AssignClusters partitions the graph into k clusters and writes each
// node's Cluster field.
//
// This is an approximate k-center graph clustering, not a metric-space
// k-means: the k highest-degree nodes seed the centroids (ties broken by
// input order), every node is assigned to the centroid with the smallest
// BFS hop distance (capped at clusterHopCap; anything beyond counts as
// unreachableDistance), and assignment ties go to the lower centroid
// index. Results depend on the degree-based seeding and are not guaranteed
// optimal. Deterministic for a fixed topology and k.
//
// A k below 1 or an empty graph is a no-op; cluster fields are then left
// unassigned.
func AssignClusters(g *model.Graph, k int) {
	nodes := g.Nodes()
	if k < 1 || len(nodes) == 0 {
		return
	}
	if k > len(nodes) {
		k = len(nodes)
	}

	centroids := topDegreeNodes(g, k)
	adj := g.BuildAdjacency()

	distances := make([]map[string]int, len(centroids))
	for i, c := range centroids {
		distances[i] = HopDistances(adj, c.ID, clusterHopCap)
	}

	for _, n := range nodes {
		best := 0
		bestDist := unreachableDistance + 1
		for i := range centroids {
			d, ok := distances[i][n.ID]
			if !ok {
				d = unreachableDistance
			}
			if d < bestDist {
				best = i
				bestDist = d
			}
		}
		n.Cluster = best
	}
}

// topDegreeNodes returns the k nodes with highest connection count, ties
// broken by input order.
func topDegreeNodes(g *model.Graph, k int) []*model.Node {
	nodes := g.Nodes()
	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return nodes[order[a]].Connections > nodes[order[b]].Connections
	})

	top := make([]*model.Node, 0, k)
	for _, idx := range order[:k] {
		top = append(top, nodes[idx])
	}
	return top
}
