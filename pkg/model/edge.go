package model

// Edge is a relationship between two nodes, referenced by id. Endpoints are
// not required to resolve: edges whose source or target is missing from the
// node set are skipped by adjacency, rendering and algorithms rather than
// rejected, since upstream data can be momentarily inconsistent during
// incremental loads.
type Edge struct {
	Source string
	Target string

	// Weight biases attraction strength and line thickness.
	Weight float64

	Kind Kind

	// Local marks edges authored in this session rather than ingested.
	Local bool
}

// SelfLoop reports whether the edge connects a node to itself.
func (e *Edge) SelfLoop() bool { return e.Source == e.Target }
