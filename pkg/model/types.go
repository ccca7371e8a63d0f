package model

import "fmt"

// Tier classifies a node. The set is closed: parsing an unknown tier is an
// error rather than a silent fallback, and every tier has exactly one entry
// in the display table below.
type Tier uint8

const (
	TierHyper Tier = iota
	TierMega
	TierRegular
	TierShadow
	TierTrack
	TierArtist
	TierSample
	TierRelease

	tierCount
)

// tierInfo is the single source of truth for per-tier display metadata and
// hierarchical ordering.
type tierInfo struct {
	Name   string
	Rank   int // bucket order for hierarchical layout, 0 = topmost
	Radius float64
	Color  string
	Icon   rune
}

var tierTable = [tierCount]tierInfo{
	TierHyper:   {Name: "hyper", Rank: 0, Radius: 14, Color: "#FF00FF", Icon: '◆'},
	TierMega:    {Name: "mega", Rank: 1, Radius: 11, Color: "#00FFFF", Icon: '◉'},
	TierRegular: {Name: "regular", Rank: 2, Radius: 8, Color: "#FFFFFF", Icon: '●'},
	TierShadow:  {Name: "shadow", Rank: 3, Radius: 6, Color: "#666666", Icon: '○'},
	TierTrack:   {Name: "track", Rank: 4, Radius: 9, Color: "#00FF00", Icon: '♪'},
	TierArtist:  {Name: "artist", Rank: 5, Radius: 10, Color: "#FFFF00", Icon: '♫'},
	TierSample:  {Name: "sample", Rank: 6, Radius: 7, Color: "#FF8800", Icon: '◈'},
	TierRelease: {Name: "release", Rank: 7, Radius: 9, Color: "#8888FF", Icon: '◎'},
}

// Tiers returns all tiers in hierarchical bucket order.
func Tiers() []Tier {
	return []Tier{
		TierHyper, TierMega, TierRegular, TierShadow,
		TierTrack, TierArtist, TierSample, TierRelease,
	}
}

func (t Tier) valid() bool { return t < tierCount }

// String returns the tier's wire name.
func (t Tier) String() string {
	if !t.valid() {
		return fmt.Sprintf("tier(%d)", uint8(t))
	}
	return tierTable[t].Name
}

// Rank returns the tier's hierarchical bucket order (0 = topmost).
func (t Tier) Rank() int { return tierTable[t].Rank }

// Radius returns the tier's default visual radius in world units.
func (t Tier) Radius() float64 { return tierTable[t].Radius }

// Color returns the tier's default display color.
func (t Tier) Color() string { return tierTable[t].Color }

// Icon returns the tier's display glyph.
func (t Tier) Icon() rune { return tierTable[t].Icon }

// ParseTier converts a wire name to a Tier.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers() {
		if tierTable[t].Name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// Kind classifies a relationship. Like Tier, the set is closed and each
// kind carries its directionality and display color.
type Kind uint8

const (
	KindParent Kind = iota
	KindTemporal
	KindSemantic
	KindDerivation
	KindCollaboration

	kindCount
)

type kindInfo struct {
	Name     string
	Directed bool
	Color    string
}

var kindTable = [kindCount]kindInfo{
	KindParent:        {Name: "parent", Directed: true, Color: "#00FFFF"},
	KindTemporal:      {Name: "temporal", Directed: true, Color: "#888888"},
	KindSemantic:      {Name: "semantic", Directed: false, Color: "#FF00FF"},
	KindDerivation:    {Name: "derivation", Directed: true, Color: "#FF8800"},
	KindCollaboration: {Name: "collaboration", Directed: false, Color: "#FFFF00"},
}

// Kinds returns all edge kinds.
func Kinds() []Kind {
	return []Kind{KindParent, KindTemporal, KindSemantic, KindDerivation, KindCollaboration}
}

func (k Kind) valid() bool { return k < kindCount }

// String returns the kind's wire name.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindTable[k].Name
}

// Directed reports whether edges of this kind have a direction.
func (k Kind) Directed() bool { return kindTable[k].Directed }

// Color returns the kind's default line color.
func (k Kind) Color() string { return kindTable[k].Color }

// ParseKind converts a wire name to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if kindTable[k].Name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
