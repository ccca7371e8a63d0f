// Package render translates the visible set plus interaction state into
// draw calls on a 2D surface. Two surfaces are provided: a rune-grid
// canvas for terminal display and a PNG rasterizer for snapshots. Tier
// and kind colors come from the model's display tables.
package render

import (
	"github.com/dd0wney/cluso-lens/pkg/filter"
	"github.com/dd0wney/cluso-lens/pkg/interaction"
	"github.com/dd0wney/cluso-lens/pkg/model"
)

// Frame is everything a surface needs to draw one animation frame.
type Frame struct {
	Visible *filter.VisibleSet
	Camera  *interaction.Camera

	SelectedID string
	HoveredID  string

	// Path is the picked shortest path to highlight, in order.
	Path []string

	// PendingSource is the armed connect-mode source to highlight.
	PendingSource string
}

// onPath reports whether a node id is on the highlighted path.
func (f *Frame) onPath(id string) bool {
	for _, p := range f.Path {
		if p == id {
			return true
		}
	}
	return false
}

// pathEdge reports whether the highlighted path traverses the edge in
// either direction.
func (f *Frame) pathEdge(e *model.Edge) bool {
	for i := 0; i+1 < len(f.Path); i++ {
		if (f.Path[i] == e.Source && f.Path[i+1] == e.Target) ||
			(f.Path[i] == e.Target && f.Path[i+1] == e.Source) {
			return true
		}
	}
	return false
}
