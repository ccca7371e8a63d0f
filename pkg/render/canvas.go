package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

const (
	miniMapWidth  = 16
	miniMapHeight = 8
)

// Canvas renders frames onto a rune grid sized in terminal cells. Node
// world coordinates go through the frame's camera, so pan and zoom are
// already accounted for by the time anything is painted.
type Canvas struct {
	width  int
	height int

	ShowLabels  bool
	ShowMiniMap bool
}

// NewCanvas creates a canvas of the given cell size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height, ShowLabels: true, ShowMiniMap: true}
}

// Resize changes the cell size.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
}

type cell struct {
	r     rune
	color string
	bold  bool
}

// Render draws the frame and returns styled terminal lines.
func (c *Canvas) Render(f *Frame) string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	grid := make([][]cell, c.height)
	for y := range grid {
		grid[y] = make([]cell, c.width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	c.drawEdges(grid, f)
	c.drawNodes(grid, f)
	if c.ShowMiniMap {
		c.drawMiniMap(grid, f)
	}

	return renderGrid(grid)
}

func (c *Canvas) drawEdges(grid [][]cell, f *Frame) {
	for _, e := range f.Visible.Edges {
		src := findNode(f.Visible.Nodes, e.Source)
		dst := findNode(f.Visible.Nodes, e.Target)
		if src == nil || dst == nil || src == dst {
			continue
		}
		x1, y1 := c.toCell(f, src.X, src.Y)
		x2, y2 := c.toCell(f, dst.X, dst.Y)

		color := e.Kind.Color()
		h, v := '─', '│'
		if e.Weight >= 2 {
			h, v = '━', '┃'
		}
		if f.pathEdge(e) {
			color = "#FF00FF"
			h, v = '═', '║'
		}

		// L-shaped route: horizontal to the midpoint column, vertical,
		// then horizontal to the target.
		midX := (x1 + x2) / 2
		drawH(grid, y1, x1, midX, h, color)
		drawV(grid, midX, y1, y2, v, color)
		drawH(grid, y2, midX, x2, h, color)

		if e.Kind.Directed() {
			arrow := '→'
			if x2 < x1 {
				arrow = '←'
			}
			setIfEmpty(grid, x2, y2, cell{r: arrow, color: color})
		}
	}
}

func (c *Canvas) drawNodes(grid [][]cell, f *Frame) {
	for _, n := range f.Visible.Nodes {
		x, y := c.toCell(f, n.X, n.Y)
		if x < 0 || x >= c.width || y < 0 || y >= c.height {
			continue
		}

		color := n.Tier.Color()
		bold := false
		switch {
		case n.ID == f.SelectedID || n.ID == f.PendingSource:
			bold = true
			// Glow ring around the selected node.
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				setIfEmpty(grid, x+d[0], y+d[1], cell{r: '·', color: color})
			}
		case f.onPath(n.ID):
			color = "#FF00FF"
			bold = true
		case n.ID == f.HoveredID:
			bold = true
		}

		grid[y][x] = cell{r: n.Tier.Icon(), color: color, bold: bold}

		if c.ShowLabels && n.Label != "" {
			drawLabel(grid, x+2, y, n.Label, color)
		}
	}
}

// drawMiniMap paints a scaled-down overview in the top-right corner,
// ignoring the camera so the whole graph stays in view.
func (c *Canvas) drawMiniMap(grid [][]cell, f *Frame) {
	if c.width < miniMapWidth+2 || c.height < miniMapHeight+2 || len(f.Visible.Nodes) == 0 {
		return
	}

	minX, minY := f.Visible.Nodes[0].X, f.Visible.Nodes[0].Y
	maxX, maxY := minX, minY
	for _, n := range f.Visible.Nodes {
		minX, maxX = minf(minX, n.X), maxf(maxX, n.X)
		minY, maxY = minf(minY, n.Y), maxf(maxY, n.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX < 1 {
		spanX = 1
	}
	if spanY < 1 {
		spanY = 1
	}

	originX := c.width - miniMapWidth - 1
	for y := 0; y <= miniMapHeight; y++ {
		for x := 0; x <= miniMapWidth; x++ {
			border := y == 0 || y == miniMapHeight || x == 0 || x == miniMapWidth
			if border {
				grid[y][originX+x] = cell{r: borderRune(x, y), color: "#444444"}
			} else {
				grid[y][originX+x] = cell{r: ' '}
			}
		}
	}

	for _, n := range f.Visible.Nodes {
		mx := originX + 1 + int((n.X-minX)/spanX*float64(miniMapWidth-2))
		my := 1 + int((n.Y-minY)/spanY*float64(miniMapHeight-2))
		grid[my][mx] = cell{r: '•', color: n.Tier.Color()}
	}
}

func borderRune(x, y int) rune {
	switch {
	case x == 0 && y == 0:
		return '┌'
	case y == 0 && x == miniMapWidth:
		return '┐'
	case x == 0 && y == miniMapHeight:
		return '└'
	case x == miniMapWidth && y == miniMapHeight:
		return '┘'
	case y == 0 || y == miniMapHeight:
		return '─'
	default:
		return '│'
	}
}

// toCell maps a world coordinate to a grid cell through the camera,
// scaling each axis by the grid-to-viewport ratio.
func (c *Canvas) toCell(f *Frame, wx, wy float64) (int, int) {
	sx, sy := f.Camera.WorldToScreen(wx, wy)
	scaleX := float64(c.width) / f.Camera.Width
	scaleY := float64(c.height) / f.Camera.Height
	return int(sx * scaleX), int(sy * scaleY)
}

func findNode(nodes []*model.Node, id string) *model.Node {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func drawLabel(grid [][]cell, x, y int, label string, color string) {
	if y < 0 || y >= len(grid) {
		return
	}
	for i, r := range label {
		cx := x + i
		if cx < 0 || cx >= len(grid[y]) {
			break
		}
		if grid[y][cx].r != ' ' {
			break
		}
		grid[y][cx] = cell{r: r, color: color}
	}
}

func drawH(grid [][]cell, y, x1, x2 int, r rune, color string) {
	if y < 0 || y >= len(grid) {
		return
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		setIfEmpty(grid, x, y, cell{r: r, color: color})
	}
}

func drawV(grid [][]cell, x, y1, y2 int, r rune, color string) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		setIfEmpty(grid, x, y, cell{r: r, color: color})
	}
}

func setIfEmpty(grid [][]cell, x, y int, c cell) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	if grid[y][x].r != ' ' {
		return
	}
	grid[y][x] = c
}

func renderGrid(grid [][]cell) string {
	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		// Batch runs of identical styling to keep output compact.
		var run []rune
		var runColor string
		var runBold bool
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			if runColor != "" || runBold {
				style := lipgloss.NewStyle().Bold(runBold)
				if runColor != "" {
					style = style.Foreground(lipgloss.Color(runColor))
				}
				s = style.Render(s)
			}
			b.WriteString(s)
			run = run[:0]
		}
		for _, cl := range row {
			if cl.color != runColor || cl.bold != runBold {
				flush()
				runColor, runBold = cl.color, cl.bold
			}
			run = append(run, cl.r)
		}
		flush()
	}
	return b.String()
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
