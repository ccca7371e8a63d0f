package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

func filterGraph(t *testing.T, nodes []*model.Node, edges []*model.Edge) *model.Graph {
	t.Helper()
	g, err := model.NewGraph(nodes, edges)
	require.NoError(t, err)
	return g
}

func visibleIDs(vs *VisibleSet) []string {
	ids := make([]string, 0, len(vs.Nodes))
	for _, n := range vs.Nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestPassThroughPipeline(t *testing.T) {
	g := filterGraph(t, []*model.Node{
		{ID: "a", Tier: model.TierRegular},
		{ID: "b", Tier: model.TierShadow},
	}, []*model.Edge{{Source: "a", Target: "b", Kind: model.KindParent}})

	vs := NewPipeline().Apply(g)
	assert.Len(t, vs.Nodes, 2)
	assert.Len(t, vs.Edges, 1)
}

func TestTierAllowListBeatsSearch(t *testing.T) {
	// A shadow node matching the search query stays hidden when its tier
	// is off the allow-list.
	g := filterGraph(t, []*model.Node{
		{ID: "X", Label: "sneaky match", Tier: model.TierShadow},
		{ID: "Y", Label: "match too", Tier: model.TierRegular},
	}, nil)

	p := NewPipeline()
	p.AllowedTiers[model.TierShadow] = false
	p.Search = "match"

	vs := p.Apply(g)
	assert.Equal(t, []string{"Y"}, visibleIDs(vs))
}

func TestHiddenTierIndependentOfAllowList(t *testing.T) {
	g := filterGraph(t, []*model.Node{{ID: "a", Tier: model.TierMega}}, nil)

	p := NewPipeline()
	p.HiddenTiers[model.TierMega] = true
	assert.Empty(t, p.Apply(g).Nodes)

	// Soft hide lifts without touching the allow-list.
	p.HiddenTiers[model.TierMega] = false
	assert.Len(t, p.Apply(g).Nodes, 1)
}

func TestFocusScope(t *testing.T) {
	g := filterGraph(t, []*model.Node{
		{ID: "center", Tier: model.TierRegular},
		{ID: "near", Tier: model.TierRegular},
		{ID: "far", Tier: model.TierRegular},
	}, []*model.Edge{
		{Source: "center", Target: "near", Kind: model.KindParent},
		{Source: "near", Target: "far", Kind: model.KindParent},
	})

	p := NewPipeline()
	p.FocusNodeID = "center"

	vs := p.Apply(g)
	assert.ElementsMatch(t, []string{"center", "near"}, visibleIDs(vs))
}

func TestSearchMatchesLabelTagsAndGenre(t *testing.T) {
	g := filterGraph(t, []*model.Node{
		{ID: "l", Label: "Midnight Drive", Tier: model.TierTrack},
		{ID: "t", Label: "other", Tags: []string{"midnight"}, Tier: model.TierTrack},
		{ID: "g", Label: "another", Tier: model.TierTrack, Attrs: map[string]string{GenreAttr: "midnight jazz"}},
		{ID: "n", Label: "nope", Tier: model.TierTrack},
	}, nil)

	p := NewPipeline()
	p.Search = "MIDNIGHT" // case-insensitive

	vs := p.Apply(g)
	assert.ElementsMatch(t, []string{"l", "t", "g"}, visibleIDs(vs))
}

func TestExactTierStacksWithAllowList(t *testing.T) {
	g := filterGraph(t, []*model.Node{
		{ID: "a", Tier: model.TierArtist},
		{ID: "r", Tier: model.TierRegular},
	}, nil)

	p := NewPipeline()
	tier := model.TierArtist
	p.ExactTier = &tier
	assert.Equal(t, []string{"a"}, visibleIDs(p.Apply(g)))

	// Both must pass: excluding the tier from the allow-list wins.
	p.AllowedTiers[model.TierArtist] = false
	assert.Empty(t, p.Apply(g).Nodes)
}

func TestNumericRangeInclusive(t *testing.T) {
	g := filterGraph(t, []*model.Node{
		{ID: "slow", Tier: model.TierTrack, NumAttrs: map[string]float64{"bpm": 80}},
		{ID: "edge", Tier: model.TierTrack, NumAttrs: map[string]float64{"bpm": 120}},
		{ID: "fast", Tier: model.TierTrack, NumAttrs: map[string]float64{"bpm": 180}},
		{ID: "none", Tier: model.TierTrack},
	}, nil)

	p := NewPipeline()
	p.Range = &NumericRange{Attr: "bpm", Min: 100, Max: 120}

	vs := p.Apply(g)
	// Bounds are inclusive; nodes lacking the attribute always pass.
	assert.ElementsMatch(t, []string{"edge", "none"}, visibleIDs(vs))
}

func TestViewModeOverridesGenericFilters(t *testing.T) {
	g := filterGraph(t, []*model.Node{
		{ID: "track", Label: "match", Tier: model.TierTrack},
		{ID: "reg", Label: "match", Tier: model.TierRegular},
		{ID: "derived", Label: "match", Tier: model.TierRelease},
	}, []*model.Edge{
		{Source: "derived", Target: "track", Kind: model.KindDerivation},
	})

	p := NewPipeline()
	p.Search = "match" // all three pass the generic predicates
	p.ViewMode = ViewSampleTree

	vs := p.Apply(g)
	// reg matches the search but the structural filter evaluates last.
	assert.ElementsMatch(t, []string{"track", "derived"}, visibleIDs(vs))
}

func TestViewCollaboration(t *testing.T) {
	g := filterGraph(t, []*model.Node{
		{ID: "artist", Tier: model.TierArtist},
		{ID: "label", Tier: model.TierRelease},
		{ID: "loner", Tier: model.TierRegular},
	}, []*model.Edge{
		{Source: "artist", Target: "label", Kind: model.KindCollaboration},
	})

	p := NewPipeline()
	p.ViewMode = ViewCollaboration

	assert.ElementsMatch(t, []string{"artist", "label"}, visibleIDs(p.Apply(g)))
}

func TestEdgeVisibilityRequiresBothEndpoints(t *testing.T) {
	g := filterGraph(t, []*model.Node{
		{ID: "a", Tier: model.TierRegular},
		{ID: "b", Tier: model.TierShadow},
	}, []*model.Edge{
		{Source: "a", Target: "b", Kind: model.KindParent},
		{Source: "a", Target: "ghost", Kind: model.KindParent},
	})

	p := NewPipeline()
	p.AllowedTiers[model.TierShadow] = false

	vs := p.Apply(g)
	assert.Len(t, vs.Nodes, 1)
	assert.Empty(t, vs.Edges, "edges to hidden or missing endpoints are dropped")
}

func TestHiddenEdgeKinds(t *testing.T) {
	g := filterGraph(t, []*model.Node{
		{ID: "a", Tier: model.TierRegular},
		{ID: "b", Tier: model.TierRegular},
	}, []*model.Edge{
		{Source: "a", Target: "b", Kind: model.KindTemporal},
		{Source: "a", Target: "b", Kind: model.KindSemantic},
	})

	p := NewPipeline()
	p.HiddenKinds[model.KindTemporal] = true

	vs := p.Apply(g)
	require.Len(t, vs.Edges, 1)
	assert.Equal(t, model.KindSemantic, vs.Edges[0].Kind)
}

func TestParseViewMode(t *testing.T) {
	for _, v := range []ViewMode{ViewDefault, ViewSampleTree, ViewCollaboration} {
		parsed, err := ParseViewMode(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	_, err := ParseViewMode("xray")
	assert.Error(t, err)
}
