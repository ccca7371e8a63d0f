package filter

import (
	"fmt"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

// ViewMode is a structural restriction on the visible set. It is evaluated
// after every generic predicate and can override their intent: a node that
// survives the allow-list and search still disappears if the view mode
// excludes it. That precedence is by contract, not an accident of ordering.
type ViewMode uint8

const (
	// ViewDefault imposes no structural restriction.
	ViewDefault ViewMode = iota
	// ViewSampleTree shows tracks and samples, plus any node touching a
	// derivation edge.
	ViewSampleTree
	// ViewCollaboration shows artists, plus any node touching a
	// collaboration edge.
	ViewCollaboration
)

// String returns the mode's wire name.
func (v ViewMode) String() string {
	switch v {
	case ViewDefault:
		return "default"
	case ViewSampleTree:
		return "sample-tree"
	case ViewCollaboration:
		return "collaboration"
	default:
		return fmt.Sprintf("view(%d)", uint8(v))
	}
}

// ParseViewMode converts a wire name to a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "default":
		return ViewDefault, nil
	case "sample-tree":
		return ViewSampleTree, nil
	case "collaboration":
		return ViewCollaboration, nil
	default:
		return 0, fmt.Errorf("unknown view mode %q", s)
	}
}

// passes evaluates the structural restriction for one node.
func (v ViewMode) passes(g *model.Graph, n *model.Node) bool {
	switch v {
	case ViewSampleTree:
		return n.Tier == model.TierTrack || n.Tier == model.TierSample ||
			touchesKind(g, n.ID, model.KindDerivation)
	case ViewCollaboration:
		return n.Tier == model.TierArtist ||
			touchesKind(g, n.ID, model.KindCollaboration)
	default:
		return true
	}
}

func touchesKind(g *model.Graph, id string, kind model.Kind) bool {
	for _, e := range g.Edges() {
		if e.Kind != kind || !g.Resolved(e) {
			continue
		}
		if e.Source == id || e.Target == id {
			return true
		}
	}
	return false
}
