// Package filter narrows the full node/edge set to the visible set for a
// single render pass. Predicates are composable and order-independent,
// except for the view-mode structural filter, which is documented to run
// last and may override the generic predicates. Nothing here mutates the
// underlying model.
package filter

import (
	"strings"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

// GenreAttr is the type-specific free-text field searched alongside label
// and tags.
const GenreAttr = "genre"

// NumericRange is an inclusive [Min, Max] constraint on a numeric node
// attribute. Nodes lacking the attribute always pass.
type NumericRange struct {
	Attr string
	Min  float64
	Max  float64
}

// Pipeline is the predicate set applied per frame. The zero value hides
// everything (no tiers allowed); use NewPipeline for a pass-through start.
type Pipeline struct {
	// AllowedTiers is the tier allow-list. Nodes whose tier is absent are
	// excluded.
	AllowedTiers map[model.Tier]bool

	// HiddenTiers soft-hides tiers independently of the allow-list, for
	// legend toggle interactions.
	HiddenTiers map[model.Tier]bool

	// FocusNodeID restricts the set to a node and its direct neighbors
	// when non-empty.
	FocusNodeID string

	// Search is a case-insensitive substring matched against label, tags
	// and the genre attribute; any field matching passes the node.
	Search string

	// ExactTier passes only one tier when non-nil, independent of (and in
	// addition to) the allow-list.
	ExactTier *model.Tier

	// Range excludes nodes whose numeric attribute falls outside it.
	Range *NumericRange

	// ViewMode applies a structural restriction after everything else.
	ViewMode ViewMode

	// HiddenKinds removes edges of these kinds from the visible set.
	HiddenKinds map[model.Kind]bool
}

// NewPipeline returns a pipeline that passes every node and edge.
func NewPipeline() *Pipeline {
	allowed := make(map[model.Tier]bool, len(model.Tiers()))
	for _, t := range model.Tiers() {
		allowed[t] = true
	}
	return &Pipeline{
		AllowedTiers: allowed,
		HiddenTiers:  make(map[model.Tier]bool),
		HiddenKinds:  make(map[model.Kind]bool),
		ViewMode:     ViewDefault,
	}
}

// VisibleSet is the post-filter node/edge set for one frame.
type VisibleSet struct {
	Nodes []*model.Node
	Edges []*model.Edge
}

// Contains reports whether a node id is in the visible set.
func (vs *VisibleSet) Contains(id string) bool {
	for _, n := range vs.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Apply reduces the graph to its visible set. An edge is visible only if
// both endpoints are visible and its kind is not hidden.
func (p *Pipeline) Apply(g *model.Graph) *VisibleSet {
	neighbors := p.focusNeighbors(g)
	query := strings.ToLower(strings.TrimSpace(p.Search))

	visible := make(map[string]bool, g.NodeCount())
	vs := &VisibleSet{}

	for _, n := range g.Nodes() {
		if !p.passes(n, neighbors, query) {
			continue
		}
		if !p.ViewMode.passes(g, n) {
			continue
		}
		visible[n.ID] = true
		vs.Nodes = append(vs.Nodes, n)
	}

	for _, e := range g.Edges() {
		if p.HiddenKinds[e.Kind] {
			continue
		}
		if visible[e.Source] && visible[e.Target] {
			vs.Edges = append(vs.Edges, e)
		}
	}
	return vs
}

// passes evaluates the order-independent predicates.
func (p *Pipeline) passes(n *model.Node, neighbors map[string]bool, query string) bool {
	if !p.AllowedTiers[n.Tier] {
		return false
	}
	if p.HiddenTiers[n.Tier] {
		return false
	}
	if neighbors != nil && !neighbors[n.ID] {
		return false
	}
	if p.ExactTier != nil && n.Tier != *p.ExactTier {
		return false
	}
	if query != "" && !matchesSearch(n, query) {
		return false
	}
	if p.Range != nil {
		if v, ok := n.NumAttr(p.Range.Attr); ok {
			if v < p.Range.Min || v > p.Range.Max {
				return false
			}
		}
	}
	return true
}

// focusNeighbors returns the focus node plus its direct neighbors, or nil
// when no focus is set. A focus id that resolves to nothing hides all
// nodes, which keeps the predicate honest while upstream data settles.
func (p *Pipeline) focusNeighbors(g *model.Graph) map[string]bool {
	if p.FocusNodeID == "" {
		return nil
	}
	scope := map[string]bool{p.FocusNodeID: true}
	for _, e := range g.Edges() {
		if !g.Resolved(e) {
			continue
		}
		if e.Source == p.FocusNodeID {
			scope[e.Target] = true
		}
		if e.Target == p.FocusNodeID {
			scope[e.Source] = true
		}
	}
	return scope
}

func matchesSearch(n *model.Node, query string) bool {
	if strings.Contains(strings.ToLower(n.Label), query) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(n.Attr(GenreAttr)), query)
}
