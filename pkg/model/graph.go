package model

import (
	"time"

	"github.com/google/uuid"
)

// Graph holds one session's node/edge set. It is constructed once per
// fetched dataset plus whatever the user authors locally; the engine never
// destroys ingested data. Not safe for concurrent use: all mutation happens
// on the frame loop goroutine.
type Graph struct {
	nodes []*Node
	byID  map[string]*Node
	edges []*Edge
}

// NewGraph builds a graph from pre-converted nodes and edges. Node ids must
// be unique; parallel edges and self-loops are allowed. Connection counts
// are computed immediately.
func NewGraph(nodes []*Node, edges []*Edge) (*Graph, error) {
	g := &Graph{
		nodes: make([]*Node, 0, len(nodes)),
		byID:  make(map[string]*Node, len(nodes)),
		edges: make([]*Edge, 0, len(edges)),
	}
	for _, n := range nodes {
		if _, exists := g.byID[n.ID]; exists {
			return nil, nodeErr("NewGraph", n.ID, ErrDuplicateNode)
		}
		n.Cluster = ClusterUnassigned
		g.nodes = append(g.nodes, n)
		g.byID[n.ID] = n
	}
	g.edges = append(g.edges, edges...)
	g.RecomputeConnections()
	return g, nil
}

// Nodes returns the node list in input order. Callers must not reorder it:
// input order is the tie-breaker for layout buckets and cluster centroids.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns all edges, including ones with unresolved endpoints.
func (g *Graph) Edges() []*Edge { return g.edges }

// Node looks up a node by id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Resolved reports whether both edge endpoints exist in the node set.
func (g *Graph) Resolved(e *Edge) bool {
	_, src := g.byID[e.Source]
	_, dst := g.byID[e.Target]
	return src && dst
}

// BuildAdjacency builds an undirected adjacency view over resolved edges,
// regardless of kind directionality. Edges referencing missing nodes are
// ignored. All graph algorithms operate on this view.
func (g *Graph) BuildAdjacency() map[string]map[string]struct{} {
	adj := make(map[string]map[string]struct{}, len(g.nodes))
	for _, n := range g.nodes {
		adj[n.ID] = make(map[string]struct{})
	}
	for _, e := range g.edges {
		if !g.Resolved(e) {
			continue
		}
		adj[e.Source][e.Target] = struct{}{}
		adj[e.Target][e.Source] = struct{}{}
	}
	return adj
}

// Degree returns the number of resolved edges touching the node, duplicates
// counted. A self-loop touches the node twice.
func (g *Graph) Degree(id string) int {
	deg := 0
	for _, e := range g.edges {
		if !g.Resolved(e) {
			continue
		}
		if e.Source == id {
			deg++
		}
		if e.Target == id {
			deg++
		}
	}
	return deg
}

// RecomputeConnections refreshes every node's Connections field from the
// edge list. Called after any edge mutation.
func (g *Graph) RecomputeConnections() {
	for _, n := range g.nodes {
		n.Connections = 0
	}
	for _, e := range g.edges {
		if !g.Resolved(e) {
			continue
		}
		g.byID[e.Source].Connections++
		g.byID[e.Target].Connections++
	}
}

// ClearClusters resets all cluster assignments. Called whenever the
// node/edge set changes, since assignments are only valid for the topology
// they were computed on.
func (g *Graph) ClearClusters() {
	for _, n := range g.nodes {
		n.Cluster = ClusterUnassigned
	}
}

// AddLocalNode authors a new in-memory node. Ids are generated; the node is
// never written back by the engine and must be persisted by the caller if
// desired.
func (g *Graph) AddLocalNode(label string, tier Tier, x, y float64) *Node {
	n := &Node{
		ID:        "local-" + uuid.NewString(),
		Label:     label,
		Tier:      tier,
		X:         x,
		Y:         y,
		CreatedAt: time.Now(),
		Cluster:   ClusterUnassigned,
		Local:     true,
	}
	g.nodes = append(g.nodes, n)
	g.byID[n.ID] = n
	g.ClearClusters()
	return n
}

// AddLocalEdge authors a new in-memory edge between two existing nodes.
// A self-referential edge is a no-op (returns nil), matching the connect
// mode semantics.
func (g *Graph) AddLocalEdge(source, target string, kind Kind, weight float64) *Edge {
	if source == target {
		return nil
	}
	if _, ok := g.byID[source]; !ok {
		return nil
	}
	if _, ok := g.byID[target]; !ok {
		return nil
	}
	e := &Edge{Source: source, Target: target, Weight: weight, Kind: kind, Local: true}
	g.edges = append(g.edges, e)
	g.RecomputeConnections()
	g.ClearClusters()
	return e
}

// RemoveLocalNode removes a locally authored node and its incident edges.
// Ingested nodes cannot be removed.
func (g *Graph) RemoveLocalNode(id string) error {
	n, ok := g.byID[id]
	if !ok {
		return nodeErr("RemoveLocalNode", id, ErrNodeNotFound)
	}
	if !n.Local {
		return nodeErr("RemoveLocalNode", id, ErrNotLocal)
	}
	delete(g.byID, id)
	kept := g.nodes[:0]
	for _, other := range g.nodes {
		if other.ID != id {
			kept = append(kept, other)
		}
	}
	g.nodes = kept
	keptEdges := g.edges[:0]
	for _, e := range g.edges {
		if e.Source != id && e.Target != id {
			keptEdges = append(keptEdges, e)
		}
	}
	g.edges = keptEdges
	g.RecomputeConnections()
	g.ClearClusters()
	return nil
}

// RemoveLocalEdge removes the first locally authored edge matching the
// endpoints. Returns false if no such edge exists.
func (g *Graph) RemoveLocalEdge(source, target string) bool {
	for i, e := range g.edges {
		if e.Local && e.Source == source && e.Target == target {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			g.RecomputeConnections()
			g.ClearClusters()
			return true
		}
	}
	return false
}
