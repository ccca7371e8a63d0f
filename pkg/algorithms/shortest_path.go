package algorithms

import (
	"container/list"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

// FindPath finds the shortest path between two nodes by breadth-first
// search over the undirected adjacency view. The graph is unweighted, so
// the first path found is shortest in hop count. Returns nil when either
// endpoint is absent or no path exists; a node reaches itself with the
// single-element path [startID].
func FindPath(g *model.Graph, startID, endID string) []string {
	if _, ok := g.Node(startID); !ok {
		return nil
	}
	if _, ok := g.Node(endID); !ok {
		return nil
	}
	if startID == endID {
		return []string{startID}
	}

	adj := g.BuildAdjacency()

	queue := list.New()
	queue.PushBack(startID)
	parent := map[string]string{startID: startID}

	for queue.Len() > 0 {
		currentID := queue.Remove(queue.Front()).(string)

		for neighborID := range adj[currentID] {
			if _, seen := parent[neighborID]; seen {
				continue
			}
			parent[neighborID] = currentID
			if neighborID == endID {
				return reconstructPath(endID, parent)
			}
			queue.PushBack(neighborID)
		}
	}

	return nil // no path
}

// reconstructPath walks parent pointers back to the start and reverses.
func reconstructPath(endID string, parent map[string]string) []string {
	path := []string{endID}
	node := endID
	for parent[node] != node {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// HopDistances runs a BFS from sourceID over a prebuilt adjacency view,
// returning hop counts for every node reached within maxHops. Nodes beyond
// the cap are simply absent from the result; the cap bounds traversal cost
// on large sparse graphs.
func HopDistances(adj map[string]map[string]struct{}, sourceID string, maxHops int) map[string]int {
	distances := map[string]int{sourceID: 0}

	queue := list.New()
	queue.PushBack(sourceID)

	for queue.Len() > 0 {
		currentID := queue.Remove(queue.Front()).(string)
		currentDist := distances[currentID]
		if currentDist >= maxHops {
			continue
		}

		for neighborID := range adj[currentID] {
			if _, visited := distances[neighborID]; visited {
				continue
			}
			distances[neighborID] = currentDist + 1
			queue.PushBack(neighborID)
		}
	}

	return distances
}
