package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierRoundTrip(t *testing.T) {
	for _, tier := range Tiers() {
		parsed, err := ParseTier(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, parsed)
	}
}

func TestParseTierUnknown(t *testing.T) {
	_, err := ParseTier("quantum")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestTierMetadataComplete(t *testing.T) {
	for _, tier := range Tiers() {
		assert.NotEmpty(t, tier.String())
		assert.NotEmpty(t, tier.Color())
		assert.Greater(t, tier.Radius(), 0.0)
		assert.NotZero(t, tier.Icon())
	}
}

func TestTierRankOrdering(t *testing.T) {
	// The hierarchical layout depends on this exact bucket order.
	want := []Tier{
		TierHyper, TierMega, TierRegular, TierShadow,
		TierTrack, TierArtist, TierSample, TierRelease,
	}
	for i, tier := range want {
		assert.Equal(t, i, tier.Rank())
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := ParseKind("telepathy")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindDirectionality(t *testing.T) {
	assert.True(t, KindParent.Directed())
	assert.True(t, KindTemporal.Directed())
	assert.True(t, KindDerivation.Directed())
	assert.False(t, KindSemantic.Directed())
	assert.False(t, KindCollaboration.Directed())
}
