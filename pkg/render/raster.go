package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RasterOptions configures PNG snapshot rendering.
type RasterOptions struct {
	Width      int
	Height     int
	NodeRadius float64
	FontSize   int
	Labels     bool
}

// DefaultRasterOptions returns sensible defaults for PNG snapshots.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		Width:      1280,
		Height:     960,
		NodeRadius: 6,
		FontSize:   12,
		Labels:     true,
	}
}

var (
	rasterBackground = color.RGBA{16, 16, 24, 255}
	rasterPathColor  = color.RGBA{255, 0, 255, 255}
	rasterLabelColor = color.RGBA{220, 220, 220, 255}
)

type rasterContext struct {
	img       *image.RGBA
	scale     float64
	lineWidth float64
	face      font.Face
}

func newRasterContext(img *image.RGBA, scale int, fontSize int) (*rasterContext, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(fontSize * scale),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return &rasterContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale),
		face:      face,
	}, nil
}

// WritePNG renders the frame to a PNG image. The snapshot ignores the
// camera and fits the whole visible graph into the image, so an export
// stays useful regardless of where the viewport happened to be.
// Rendering happens at 4x and is downsampled for smoother edges.
func WritePNG(f *Frame, w io.Writer, opts RasterOptions) error {
	const scale = 4
	large := image.NewRGBA(image.Rect(0, 0, opts.Width*scale, opts.Height*scale))
	ctx, err := newRasterContext(large, scale, opts.FontSize)
	if err != nil {
		return err
	}

	draw.Draw(large, large.Bounds(), image.NewUniform(rasterBackground), image.Point{}, draw.Src)
	drawFrame(ctx, f, opts, scale)

	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)

	return png.Encode(w, final)
}

func drawFrame(ctx *rasterContext, f *Frame, opts RasterOptions, scale int) {
	nodes := f.Visible.Nodes
	if len(nodes) == 0 {
		return
	}

	minX, minY := nodes[0].X, nodes[0].Y
	maxX, maxY := minX, minY
	for _, n := range nodes {
		minX, maxX = math.Min(minX, n.X), math.Max(maxX, n.X)
		minY, maxY = math.Min(minY, n.Y), math.Max(maxY, n.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX < 1 {
		spanX = 1
	}
	if spanY < 1 {
		spanY = 1
	}

	pad := 40.0 * float64(scale)
	availW := float64(opts.Width*scale) - 2*pad
	availH := float64(opts.Height*scale) - 2*pad
	fit := math.Min(availW/spanX, availH/spanY)

	toPx := func(wx, wy float64) (float64, float64) {
		x := pad + (availW-spanX*fit)/2 + (wx-minX)*fit
		y := pad + (availH-spanY*fit)/2 + (wy-minY)*fit
		return x, y
	}

	for _, e := range f.Visible.Edges {
		src := findNode(nodes, e.Source)
		dst := findNode(nodes, e.Target)
		if src == nil || dst == nil || src == dst {
			continue
		}
		x1, y1 := toPx(src.X, src.Y)
		x2, y2 := toPx(dst.X, dst.Y)
		c := parseHexColor(e.Kind.Color())
		if f.pathEdge(e) {
			c = rasterPathColor
		}
		if e.Kind.Directed() {
			drawArrowLine(ctx, x1, y1, x2, y2, c)
		} else {
			drawLine(ctx, x1, y1, x2, y2, c)
		}
	}

	for _, n := range nodes {
		x, y := toPx(n.X, n.Y)
		r := opts.NodeRadius * float64(scale) * (0.6 + 0.4*n.Tier.Radius()/12.0)
		c := parseHexColor(n.Tier.Color())
		if f.onPath(n.ID) {
			c = rasterPathColor
		}
		if n.ID == f.SelectedID {
			fillCircle(ctx, x, y, r+3*ctx.scale, color.RGBA{255, 255, 255, 255})
		}
		fillCircle(ctx, x, y, r, c)

		if opts.Labels && n.Label != "" {
			drawText(ctx, int(x), int(y-r)-4*scale, n.Label, rasterLabelColor)
		}
	}
}

func fillCircle(ctx *rasterContext, cx, cy, r float64, c color.Color) {
	x0, x1 := int(cx-r), int(cx+r)
	y0, y1 := int(cy-r), int(cy+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r {
				ctx.img.Set(x, y, c)
			}
		}
	}
}

func drawLine(ctx *rasterContext, x1, y1, x2, y2 float64, c color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		ctx.img.Set(int(x1), int(y1), c)
		return
	}
	perpX := -dy / dist
	perpY := dx / dist
	half := ctx.lineWidth / 2
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := x1 + dx*t
		py := y1 + dy*t
		for off := -half; off <= half; off += 0.5 {
			ctx.img.Set(int(px+perpX*off), int(py+perpY*off), c)
		}
	}
}

func drawArrowLine(ctx *rasterContext, x1, y1, x2, y2 float64, c color.Color) {
	drawLine(ctx, x1, y1, x2, y2, c)

	dx := x2 - x1
	dy := y2 - y1
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		return
	}
	nx := dx / dist
	ny := dy / dist

	arrowLen := 6.0 * ctx.scale
	arrowWidth := 3.0 * ctx.scale
	drawLine(ctx, x2, y2, x2-nx*arrowLen+ny*arrowWidth, y2-ny*arrowLen-nx*arrowWidth, c)
	drawLine(ctx, x2, y2, x2-nx*arrowLen-ny*arrowWidth, y2-ny*arrowLen+nx*arrowWidth, c)
}

func drawText(ctx *rasterContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()
	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x - width/2),
			Y: fixed.I(y),
		},
	}
	d.DrawString(text)
}

// parseHexColor converts a "#RRGGBB" string to an RGBA color. Malformed
// input falls back to mid gray rather than erroring, since colors come
// from static tier and kind tables.
func parseHexColor(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{128, 128, 128, 255}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{128, 128, 128, 255}
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}
