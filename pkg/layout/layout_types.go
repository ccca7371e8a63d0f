package layout

import (
	"fmt"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

// Mode selects an initial-placement strategy.
type Mode uint8

const (
	// ModeForce scatters nodes near the center and runs the continuous
	// integrator every frame.
	ModeForce Mode = iota
	// ModeRadial places nodes evenly on a circle. Static: the integrator
	// does not run, and the placement is not re-applied afterwards.
	ModeRadial
	// ModeHierarchical buckets nodes by tier rank into rows. Static, like
	// ModeRadial.
	ModeHierarchical
)

// String returns the mode's wire name.
func (m Mode) String() string {
	switch m {
	case ModeForce:
		return "force"
	case ModeRadial:
		return "radial"
	case ModeHierarchical:
		return "hierarchical"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a wire name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "force":
		return ModeForce, nil
	case "radial":
		return ModeRadial, nil
	case "hierarchical":
		return ModeHierarchical, nil
	default:
		return 0, fmt.Errorf("unknown layout mode %q", s)
	}
}

// Continuous reports whether the mode runs the integrator after placement.
func (m Mode) Continuous() bool { return m == ModeForce }

// Bounds is the viewport extent in world units.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the viewport center.
func (b Bounds) Center() (float64, float64) {
	return b.Width / 2, b.Height / 2
}

// Min returns the smaller viewport dimension.
func (b Bounds) Min() float64 {
	if b.Width < b.Height {
		return b.Width
	}
	return b.Height
}

// ForceParams are the runtime-tunable integrator coefficients.
type ForceParams struct {
	Repulsion     float64 `yaml:"repulsion" validate:"gt=0"`
	Attraction    float64 `yaml:"attraction" validate:"gt=0"`
	Damping       float64 `yaml:"damping" validate:"gt=0,lt=1"`
	CenterGravity float64 `yaml:"center_gravity" validate:"gte=0"`
	LinkStrength  float64 `yaml:"link_strength" validate:"gt=0"`
}

// DefaultForceParams returns the stock coefficients.
func DefaultForceParams() ForceParams {
	return ForceParams{
		Repulsion:     500,
		Attraction:    0.02,
		Damping:       0.9,
		CenterGravity: 0.01,
		LinkStrength:  1.0,
	}
}

// Strategy assigns a starting position to every node before simulation
// begins or restarts.
type Strategy interface {
	Place(g *model.Graph)
}

// NewStrategy builds the strategy for a mode. The seed drives all
// stochastic placement so layouts replay identically.
func NewStrategy(mode Mode, bounds Bounds, seed int64) Strategy {
	switch mode {
	case ModeRadial:
		return NewRadialLayout(bounds)
	case ModeHierarchical:
		return NewHierarchicalLayout(bounds, seed)
	default:
		return NewForcePlacement(bounds, seed)
	}
}
