package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-lens/pkg/config"
	"github.com/dd0wney/cluso-lens/pkg/filter"
	"github.com/dd0wney/cluso-lens/pkg/layout"
	"github.com/dd0wney/cluso-lens/pkg/lens"
	"github.com/dd0wney/cluso-lens/pkg/logging"
	"github.com/dd0wney/cluso-lens/pkg/model"
	"github.com/dd0wney/cluso-lens/pkg/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(1)

	armedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginLeft(1)
)

type keyMap struct {
	Force        key.Binding
	Radial       key.Binding
	Hierarchical key.Binding
	ViewMode     key.Binding
	PathPick     key.Binding
	Connect      key.Binding
	EdgeKind     key.Binding
	AddNode      key.Binding
	DeleteNode   key.Binding
	Search       key.Binding
	Clear        key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	ResetCam     key.Binding
	Recluster    key.Binding
	ExportJSON   key.Binding
	ExportPNG    key.Binding
	MiniMap      key.Binding
	Labels       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Force: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "force layout"),
	),
	Radial: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "radial layout"),
	),
	Hierarchical: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tier layout"),
	),
	ViewMode: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "cycle view mode"),
	),
	PathPick: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pick path"),
	),
	Connect: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "connect nodes"),
	),
	EdgeKind: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "cycle edge kind"),
	),
	AddNode: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "add node"),
	),
	DeleteNode: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete selected"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	ResetCam: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "reset camera"),
	),
	Recluster: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "recluster"),
	),
	ExportJSON: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export json"),
	),
	ExportPNG: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "export png"),
	),
	MiniMap: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mini-map"),
	),
	Labels: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "labels"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PathPick, k.Connect, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Force, k.Radial, k.Hierarchical, k.ViewMode},
		{k.PathPick, k.Connect, k.EdgeKind, k.AddNode, k.DeleteNode},
		{k.Search, k.ZoomIn, k.ZoomOut, k.ResetCam, k.Recluster},
		{k.ExportJSON, k.ExportPNG, k.MiniMap, k.Labels, k.Quit},
	}
}

// canvasTop is the number of terminal rows above the canvas (title plus
// a blank line).
const canvasTop = 2

// canvasBottom is the number of rows reserved below the canvas for the
// status line, legend, message and help.
const canvasBottom = 5

type appModel struct {
	engine *lens.Engine
	canvas *render.Canvas
	cfg    *config.Config
	log    logging.Logger

	search    textinput.Model
	searching bool
	help      help.Model
	keys      keyMap

	width      int
	height     int
	message    string
	messageErr bool
}

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func initialModel(cfg *config.Config, engine *lens.Engine, logger logging.Logger) appModel {
	ti := textinput.New()
	ti.Placeholder = "label, tag or genre"
	ti.CharLimit = 64
	ti.Width = 32

	canvas := render.NewCanvas(80, 24)
	canvas.ShowLabels = cfg.Canvas.Labels
	canvas.ShowMiniMap = cfg.Canvas.MiniMap

	return appModel{
		engine: engine,
		canvas: canvas,
		cfg:    cfg,
		log:    logger,
		search: ti,
		help:   help.New(),
		keys:   keys,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(m.cfg.Layout.TickInterval()),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.canvas.Resize(msg.Width, max(1, msg.Height-canvasTop-canvasBottom))

	case tickMsg:
		m.engine.Step()
		return m, tickCmd(m.cfg.Layout.TickInterval())

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// toScreen maps a terminal cell to camera screen coordinates.
func (m *appModel) toScreen(cellX, cellY int) (float64, float64) {
	cam := m.engine.Camera()
	w, h := m.canvasSize()
	sx := float64(cellX) / float64(w) * cam.Width
	sy := float64(cellY-canvasTop) / float64(h) * cam.Height
	return sx, sy
}

func (m *appModel) canvasSize() (int, int) {
	w := m.width
	if w <= 0 {
		w = 80
	}
	h := m.height - canvasTop - canvasBottom
	if h <= 0 {
		h = 24
	}
	return w, h
}

func (m *appModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.engine.Zoom(1.1)
		return
	case tea.MouseButtonWheelDown:
		m.engine.Zoom(1 / 1.1)
		return
	}

	sx, sy := m.toScreen(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.engine.PointerDown(sx, sy)
			m.afterPick()
		}
	case tea.MouseActionMotion:
		m.engine.PointerMove(sx, sy)
	case tea.MouseActionRelease:
		m.engine.PointerUp()
	}
}

// afterPick surfaces the outcome of a path or connect click in the
// status message.
func (m *appModel) afterPick() {
	ctl := m.engine.Controller()
	if ctl.PathArmed() {
		start, end := ctl.PathEndpoints()
		switch {
		case end != "":
			if len(ctl.Path()) == 0 {
				m.setError(fmt.Sprintf("no path between %s and %s", start, end))
			} else {
				m.setOK(fmt.Sprintf("path: %s", strings.Join(ctl.Path(), " → ")))
			}
		case start != "":
			m.setOK(fmt.Sprintf("path start: %s, pick the end node", start))
		}
	}
	if ctl.ConnectArmed() && ctl.PendingSource() != "" {
		m.setOK(fmt.Sprintf("connecting from %s, pick the target", ctl.PendingSource()))
	}
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.engine.Pipeline().Search = m.search.Value()
		if m.search.Value() != "" {
			m.setOK("search: " + m.search.Value())
		}
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.engine.Pipeline().Search = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctl := m.engine.Controller()
	cam := m.engine.Camera()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Force):
		m.engine.SetMode(layout.ModeForce)
		m.setOK("force layout")
	case key.Matches(msg, m.keys.Radial):
		m.engine.SetMode(layout.ModeRadial)
		m.setOK("radial layout")
	case key.Matches(msg, m.keys.Hierarchical):
		m.engine.SetMode(layout.ModeHierarchical)
		m.setOK("tier layout")

	case key.Matches(msg, m.keys.ViewMode):
		next := m.engine.Pipeline().ViewMode + 1
		if next > filter.ViewCollaboration {
			next = filter.ViewDefault
		}
		m.engine.Pipeline().ViewMode = next
		m.setOK("view: " + next.String())

	case key.Matches(msg, m.keys.PathPick):
		ctl.ArmPathPicking(!ctl.PathArmed())
		if ctl.PathArmed() {
			m.setOK("path picking armed, click two nodes")
		} else {
			m.setOK("path picking off")
		}
	case key.Matches(msg, m.keys.Connect):
		ctl.ArmConnecting(!ctl.ConnectArmed())
		if ctl.ConnectArmed() {
			m.setOK("connecting armed, click source then target")
		} else {
			m.setOK("connecting off")
		}
	case key.Matches(msg, m.keys.EdgeKind):
		kinds := model.Kinds()
		next := kinds[(int(ctl.EdgeKind())+1)%len(kinds)]
		ctl.SetEdgeKind(next)
		m.setOK("edge kind: " + next.String())

	case key.Matches(msg, m.keys.AddNode):
		n := m.engine.AddNode("untitled", model.TierRegular)
		m.setOK("added " + n.ID)
	case key.Matches(msg, m.keys.DeleteNode):
		id := ctl.Selected()
		if id == "" {
			m.setError("nothing selected")
			break
		}
		if err := m.engine.RemoveNode(id); err != nil {
			m.setError(err.Error())
		} else {
			m.setOK("removed " + id)
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
	case key.Matches(msg, m.keys.Clear):
		ctl.ArmPathPicking(false)
		ctl.ArmConnecting(false)
		m.search.SetValue("")
		m.engine.Pipeline().Search = ""
		m.message = ""

	case key.Matches(msg, m.keys.ZoomIn):
		m.engine.Zoom(1.25)
	case key.Matches(msg, m.keys.ZoomOut):
		m.engine.Zoom(0.8)
	case key.Matches(msg, m.keys.ResetCam):
		cam.Reset()

	case key.Matches(msg, m.keys.Recluster):
		m.engine.Recluster(m.cfg.Clusters.Count)
		m.setOK("clusters reassigned")

	case key.Matches(msg, m.keys.ExportJSON):
		m.export("json")
	case key.Matches(msg, m.keys.ExportPNG):
		m.export("png")

	case key.Matches(msg, m.keys.MiniMap):
		m.canvas.ShowMiniMap = !m.canvas.ShowMiniMap
	case key.Matches(msg, m.keys.Labels):
		m.canvas.ShowLabels = !m.canvas.ShowLabels

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *appModel) export(format string) {
	name := fmt.Sprintf("lens-%s.%s", time.Now().Format("20060102-150405"), exportExt(format, m.cfg.Export.Compress))
	path := filepath.Join(m.cfg.Export.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		m.setError(err.Error())
		return
	}
	defer f.Close()

	switch {
	case format == "png":
		err = m.engine.ExportPNG(f, render.DefaultRasterOptions())
	case m.cfg.Export.Compress:
		err = m.engine.ExportSnappy(f)
	default:
		err = m.engine.ExportJSON(f)
	}
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.setOK("exported " + path)
	m.log.Info("view exported", logging.String("path", path))
}

func exportExt(format string, compress bool) string {
	if format == "png" {
		return "png"
	}
	if compress {
		return "json.sz"
	}
	return "json"
}

func (m *appModel) setOK(msg string) {
	m.message = msg
	m.messageErr = false
}

func (m *appModel) setError(msg string) {
	m.message = msg
	m.messageErr = true
}

func (m appModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("◈ Cluso Lens"))
	s.WriteString("\n\n")

	s.WriteString(m.canvas.Render(m.engine.Frame()))
	s.WriteString("\n")

	s.WriteString(m.statusLine())
	s.WriteString("\n")
	s.WriteString(m.legendLine())
	s.WriteString("\n")

	if m.searching {
		s.WriteString(statusStyle.Render("search: " + m.search.View()))
	} else if m.message != "" {
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}
	s.WriteString("\n")

	s.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return s.String()
}

func (m appModel) statusLine() string {
	ctl := m.engine.Controller()
	g := m.engine.Graph()

	parts := []string{
		fmt.Sprintf("layout: %s", m.engine.Mode()),
		fmt.Sprintf("view: %s", m.engine.Pipeline().ViewMode),
		fmt.Sprintf("nodes: %d edges: %d", g.NodeCount(), g.EdgeCount()),
		fmt.Sprintf("zoom: %.1fx", m.engine.Camera().Zoom),
	}
	if sel := ctl.Selected(); sel != "" {
		if n, ok := g.Node(sel); ok {
			parts = append(parts, "selected: "+n.Label)
		}
	}

	line := statusStyle.Render(strings.Join(parts, " │ "))
	if ctl.PathArmed() {
		line += " " + armedStyle.Render("[PATH]")
	}
	if ctl.ConnectArmed() {
		line += " " + armedStyle.Render(fmt.Sprintf("[CONNECT:%s]", ctl.EdgeKind()))
	}
	return line
}

func (m appModel) legendLine() string {
	var parts []string
	for _, tier := range model.Tiers() {
		parts = append(parts, fmt.Sprintf("%c %s", tier.Icon(), tier))
	}
	return legendStyle.Render(strings.Join(parts, "  "))
}

func main() {
	configPath := flag.String("config", "", "path to lens.yaml")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	g, err := loadGraph(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}

	engine := lens.New(cfg, g, lens.Options{Logger: logger})

	p := tea.NewProgram(
		initialModel(cfg, engine, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
