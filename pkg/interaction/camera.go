package interaction

// Zoom limits. Zoom is multiplicative and always anchored at the viewport
// center.
const (
	MinZoom = 0.1
	MaxZoom = 8.0
)

// Camera maps between screen space and world space. Screen coordinates are
// whatever the surface hands us (cells, pixels); world coordinates are the
// simulation's.
type Camera struct {
	Zoom float64
	PanX float64
	PanY float64

	// Viewport extent in screen units.
	Width  float64
	Height float64
}

// NewCamera creates a camera at 1x zoom over the given viewport.
func NewCamera(width, height float64) *Camera {
	return &Camera{Zoom: 1, Width: width, Height: height}
}

// ScreenToWorld translates a screen point into world coordinates,
// accounting for the current zoom factor and pan offset. Must be applied
// before any hit-testing.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	cx, cy := c.Width/2, c.Height/2
	wx := (sx-c.PanX-cx)/c.Zoom + cx
	wy := (sy-c.PanY-cy)/c.Zoom + cy
	return wx, wy
}

// WorldToScreen translates a world point into screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	cx, cy := c.Width/2, c.Height/2
	sx := (wx-cx)*c.Zoom + cx + c.PanX
	sy := (wy-cy)*c.Zoom + cy + c.PanY
	return sx, sy
}

// ZoomBy multiplies the zoom factor, clamped to [MinZoom, MaxZoom]. The
// anchor is the viewport center, not the pointer.
func (c *Camera) ZoomBy(factor float64) {
	z := c.Zoom * factor
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	c.Zoom = z
}

// PanBy shifts the view offset in screen units.
func (c *Camera) PanBy(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

// Reset restores 1x zoom and zero pan.
func (c *Camera) Reset() {
	c.Zoom = 1
	c.PanX, c.PanY = 0, 0
}

// Resize updates the viewport extent, keeping zoom and pan.
func (c *Camera) Resize(width, height float64) {
	c.Width, c.Height = width, height
}
