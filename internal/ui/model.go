package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/ribbon/internal/anim"
	"github.com/olivier-w/ribbon/internal/canvas"
	"github.com/olivier-w/ribbon/internal/clock"
	"github.com/olivier-w/ribbon/internal/export"
	"github.com/olivier-w/ribbon/internal/util"
)

// DefaultFPS is the frame rate used when Options.FPS is not set.
const DefaultFPS = 30

// Default snapshot size in pixels.
const (
	DefaultSnapshotWidth  = 1600
	DefaultSnapshotHeight = 900
)

const saveMsgTimeout = 5 * time.Second

// Options configure the terminal model.
type Options struct {
	FPS            int
	Warmup         float64 // simulated ms run before the first frame
	SaveDir        string  // where snapshots go; "" is the working directory
	SnapshotWidth  int
	SnapshotHeight int
}

// screen is the frame driver's target: it updates the engine and draws it
// into the Braille canvas, keeping the rendered text for View.
type screen struct {
	engine *anim.Engine
	canvas *canvas.Braille
	frame  string
}

func (s *screen) Ready() bool                 { return s.engine.Ready() }
func (s *screen) Update(now, elapsed float64) { s.engine.Update(now, elapsed) }

func (s *screen) Draw(now float64) {
	s.engine.Draw(s.canvas, now)
	s.frame = s.canvas.String()
}

// Model is the Bubbletea model for the ribbon TUI.
type Model struct {
	engine *anim.Engine
	driver *clock.Driver
	screen *screen
	opts   Options
	keys   keyMap
	help   help.Model
	panel  panel
	now    func() time.Time

	start     time.Time // real time zero of the frame driver
	lastFrame time.Time
	seq       int // current frame tick chain
	width     int
	height    int
	paused    bool
	quitting  bool

	saveMsg     string    // transient status message
	saveMsgTime time.Time // when saveMsg was set
	saving      bool      // snapshot being written
}

// New creates a Model animating e. The engine is warmed up by opts.Warmup
// simulated milliseconds before New returns.
func New(e *anim.Engine, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.SnapshotWidth <= 0 {
		opts.SnapshotWidth = DefaultSnapshotWidth
	}
	if opts.SnapshotHeight <= 0 {
		opts.SnapshotHeight = DefaultSnapshotHeight
	}

	s := &screen{engine: e, canvas: canvas.New(0, 0)}
	d := clock.NewDriver(s)
	d.OnGap = func(gap float64) {
		log.Printf("absorbed %.0fms frame gap", gap)
	}
	if n := d.Warmup(opts.Warmup); n > 0 {
		log.Printf("warm-up: %d updates over %.0fms", n, opts.Warmup)
	}

	return Model{
		engine: e,
		driver: d,
		screen: s,
		opts:   opts,
		keys:   newKeyMap(),
		help:   help.New(),
		panel:  newPanel(opts.FPS),
		now:    time.Now,
		start:  time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.opts.FPS, m.seq), tea.SetWindowTitle("ribbon"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.seq != m.seq || m.paused {
			return m, nil
		}
		if !m.lastFrame.IsZero() {
			m.panel.recordFrame(millis(msg.at.Sub(m.lastFrame)))
		}
		m.lastFrame = msg.at
		m.driver.Frame(m.realMillis(msg.at))
		if m.panel.visible {
			m.panel.animate(m.engine)
		}
		if m.saveMsg != "" && msg.at.Sub(m.saveMsgTime) > saveMsgTimeout {
			m.saveMsg = ""
		}
		return m, frameCmd(m.opts.FPS, m.seq)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.cyclePalette()
		}
		return m, nil

	case fileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.saveMsg = fmt.Sprintf("Save failed: %v", msg.err)
			log.Printf("snapshot: %v", msg.err)
		} else {
			m.saveMsg = fmt.Sprintf("Saved to %s", msg.destName)
			log.Printf("snapshot saved to %s", msg.destName)
		}
		m.saveMsgTime = m.now()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Pause):
		return m.togglePause()

	case key.Matches(msg, m.keys.Palette):
		m.cyclePalette()

	case key.Matches(msg, m.keys.Kind):
		m.engine.SetKind(m.engine.Kind().Next())
		log.Printf("mode %s", m.engine.Kind())
		m.redraw()

	case key.Matches(msg, m.keys.DegreeDown):
		m.setDegree(m.engine.Degree() - 1)

	case key.Matches(msg, m.keys.DegreeUp):
		m.setDegree(m.engine.Degree() + 1)

	case key.Matches(msg, m.keys.Panel):
		m.panel.visible = !m.panel.visible
		if m.panel.visible {
			targets := make([]float64, len(rows))
			for i, r := range rows {
				targets[i] = r.ratio(m.engine)
			}
			m.panel.bars.settle(targets)
		}
		m.layout()

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case !m.panel.visible:
		// The remaining keys only act on the panel.

	case key.Matches(msg, m.keys.Up):
		m.panel.move(-1)

	case key.Matches(msg, m.keys.Down):
		m.panel.move(1)

	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)

	case key.Matches(msg, m.keys.Right):
		m.adjust(1)
	}
	return m, nil
}

func (m Model) togglePause() (Model, tea.Cmd) {
	m.paused = !m.paused
	if m.paused {
		log.Printf("paused at %.0fms", m.driver.Now())
		return m, nil
	}
	// Resuming starts a new tick chain; the paused stretch is not simulated.
	m.driver.Skip(m.realMillis(m.now()))
	m.lastFrame = time.Time{}
	m.seq++
	return m, frameCmd(m.opts.FPS, m.seq)
}

func (m *Model) cyclePalette() {
	m.engine.CyclePalette()
	log.Printf("palette %s", m.engine.Palette().Name)
	m.redraw()
}

func (m *Model) setDegree(n int) {
	old := m.engine.Degree()
	m.engine.SetDegree(n)
	if m.engine.Degree() != old {
		log.Printf("degree %d -> %d", old, m.engine.Degree())
	}
	m.redraw()
}

func (m *Model) adjust(dir int) {
	r := rows[m.panel.selected]
	if adjust(m.engine, r, dir) {
		log.Printf("%s = %s", r.label, r.format(r.get(m.engine)))
		m.redraw()
	}
}

func (m Model) save() (Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	m.saving = true
	m.saveMsg = "Saving..."
	m.saveMsgTime = m.now()

	// Draw now; only encoding happens off the update loop.
	img := export.NewPNG(m.opts.SnapshotWidth, m.opts.SnapshotHeight)
	m.engine.Draw(img, m.driver.Now())
	dir := m.opts.SaveDir
	return m, func() tea.Msg {
		name := export.NextName(dir, "ribbon")
		err := img.Save(name)
		return fileSavedMsg{destName: name, err: err}
	}
}

// chromeLines is the number of rows below the canvas.
const chromeLines = 2

// layout sizes the canvas to the space left by the panel and status lines.
func (m *Model) layout() {
	cols := m.width
	if m.panel.visible {
		cols -= panelWidth
	}
	m.screen.canvas.Resize(max(cols, 0), max(m.height-chromeLines, 0))
	m.redraw()
}

// redraw renders the current state without advancing it, so changes show up
// while paused.
func (m *Model) redraw() {
	if !m.engine.Ready() {
		return
	}
	m.screen.Draw(m.driver.Now())
}

func (m Model) realMillis(t time.Time) float64 {
	return millis(t.Sub(m.start))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.screen.frame
	if m.panel.visible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.panel.view(m.engine))
	}

	bindings := m.keys.ShortHelp()
	if m.panel.visible {
		bindings = m.keys.panelHelp()
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(bindings))
	return b.String()
}

func (m Model) statusLine() string {
	parts := []string{
		m.engine.Kind().String(),
		fmt.Sprintf("degree %d", m.engine.Degree()),
		m.engine.Palette().Name,
		fmt.Sprintf("%d curves", m.engine.Curves()),
		util.FormatMillis(m.driver.Now()),
	}
	if m.paused {
		parts = append(parts, "❚❚ paused")
	}
	line := statusStyle.Render(" " + strings.Join(parts, "  "))
	if m.saveMsg != "" {
		line += "  " + helpStyle.Render(m.saveMsg)
	}
	return line
}
