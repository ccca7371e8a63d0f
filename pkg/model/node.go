package model

import "time"

// ClusterUnassigned marks a node that has not been through a clustering pass.
const ClusterUnassigned = -1

// Node is a vertex in the lens graph. Position and velocity are mutated in
// place by the layout simulator; everything else is owned by the model.
type Node struct {
	ID    string
	Label string
	Tier  Tier

	X, Y   float64
	VX, VY float64

	// PinX/PinY override the simulation on their axis when non-nil.
	PinX *float64
	PinY *float64

	// Connections is the node's degree, recomputed from the edge list.
	// Never set by hand.
	Connections int

	Tags      []string
	CreatedAt time.Time

	// Cluster is ClusterUnassigned until a clustering pass runs.
	Cluster int

	// Local marks nodes authored in this session rather than ingested.
	Local bool

	// Tier-specific attributes, used only for display and filtering.
	Attrs    map[string]string
	NumAttrs map[string]float64
}

// Pinned reports whether the node is pinned on either axis.
func (n *Node) Pinned() bool { return n.PinX != nil || n.PinY != nil }

// Pin fixes the node at the given position, overriding simulation.
func (n *Node) Pin(x, y float64) {
	n.PinX, n.PinY = &x, &y
}

// Unpin releases both axes back to the simulation.
func (n *Node) Unpin() {
	n.PinX, n.PinY = nil, nil
}

// Attr returns a string attribute, or "" when absent.
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// NumAttr returns a numeric attribute and whether it is present.
func (n *Node) NumAttr(key string) (float64, bool) {
	v, ok := n.NumAttrs[key]
	return v, ok
}

// Clone creates a deep copy of a node.
func (n *Node) Clone() *Node {
	clone := *n
	if n.PinX != nil {
		x := *n.PinX
		clone.PinX = &x
	}
	if n.PinY != nil {
		y := *n.PinY
		clone.PinY = &y
	}
	clone.Tags = make([]string, len(n.Tags))
	copy(clone.Tags, n.Tags)
	if n.Attrs != nil {
		clone.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			clone.Attrs[k] = v
		}
	}
	if n.NumAttrs != nil {
		clone.NumAttrs = make(map[string]float64, len(n.NumAttrs))
		for k, v := range n.NumAttrs {
			clone.NumAttrs[k] = v
		}
	}
	return &clone
}
