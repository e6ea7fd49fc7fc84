package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/olivier-w/ringbar/internal/anim"
	"github.com/olivier-w/ringbar/internal/config"
	"github.com/olivier-w/ringbar/internal/geometry"
	"github.com/olivier-w/ringbar/internal/progress"
	"github.com/olivier-w/ringbar/internal/render"
	"github.com/olivier-w/ringbar/internal/term"
	"github.com/olivier-w/ringbar/internal/widget"
)

// Lines reserved around the ring for the header, readouts, input and help.
const chromeLines = 10

// exportScale is how much larger than the terminal frame a saved PNG is.
const exportScale = 8

var curveNames = []string{"accelerate-decelerate", "linear", "decelerate", "spring"}

// Model is the Bubbletea model for the ringbar screen: the ring, a field to
// type a new progress value into, and key bindings for the ring's settings.
type Model struct {
	cfg     config.Config
	log     *log.Logger
	host    *teaHost
	ring    *widget.Widget
	paint   *painter
	input   textinput.Model
	curve   int

	width    int
	height   int
	quitting bool

	status    string
	statusErr bool
	statusSeq int
	saving    bool
}

// New builds the screen from cfg.
func New(cfg config.Config, logger *log.Logger) (Model, error) {
	host := newTeaHost()
	ring, err := widget.New(host, cfg.Widget,
		widget.WithDensity(cfg.PixelDensity()),
		widget.WithLogger(logger),
	)
	if err != nil {
		return Model{}, fmt.Errorf("build widget: %w", err)
	}
	ring.SetOnProgressChange(func(current, max float64) {
		logger.Debug("progress changed", "current", current, "max", max)
	})
	ring.SetMaxProgress(cfg.Max)
	if cfg.Initial > 0 {
		ring.SetCurrentProgress(cfg.Initial)
	}

	in := textinput.New()
	in.Placeholder = fmt.Sprintf("0-%s", formatValue(cfg.Max))
	in.Prompt = "progress › "
	in.CharLimit = 16
	in.Width = 16
	in.Focus()

	curve := curveIndex(cfg.Widget.Interpolator)

	return Model{
		cfg:     cfg,
		log:     logger,
		host:    host,
		ring:    ring,
		paint:   newPainter(),
		input:   in,
		curve:   curve,
	}, nil
}

// curveIndex finds name in curveNames, matching it the way anim.ParseCurve
// does. Unknown and empty names select the default curve.
func curveIndex(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range curveNames {
		if n == name {
			return i
		}
	}
	return 0
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("ringbar"), m.host.drain())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	if next.host.relayout {
		next.layout()
	}
	return next, tea.Batch(cmd, next.host.drain())
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameTickMsg:
		m.host.fire(msg)
		return m, nil

	case fileSavedMsg:
		m.saving = false
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("Save failed: %v", msg.err), true)
		}
		return m, m.setStatus("Saved to "+msg.destName, false)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		m.ring.Detach()
		m.paint.close()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	switch msg.String() {
	case "enter":
		v, err := parseProgress(m.input.Value(), m.cfg.Max)
		if err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		m.input.SetValue("")
		m.ring.SetCurrentProgress(v)
		return m, nil
	case "up":
		m.ring.SetCurrentProgress(min(m.ring.Progress()+m.cfg.Step, m.ring.MaxProgress()))
		return m, nil
	case "down":
		m.ring.SetCurrentProgress(max(m.ring.Progress()-m.cfg.Step, 0))
		return m, nil
	case "tab":
		if m.ring.Direction() == progress.Clockwise {
			m.ring.SetDirection(progress.CounterClockwise)
		} else {
			m.ring.SetDirection(progress.Clockwise)
		}
		return m, nil
	case "ctrl+a":
		m.ring.SetAnimationEnabled(!m.ring.AnimationEnabled())
		return m, nil
	case "ctrl+d":
		m.ring.SetDrawDot(!m.ring.DotEnabled())
		return m, nil
	case "ctrl+f":
		m.ring.SetFillBackgroundEnabled(!m.ring.FillBackgroundEnabled())
		return m, nil
	case "ctrl+r":
		if m.ring.ProgressCap() == render.CapRound {
			m.ring.SetProgressCap(render.CapStraight)
		} else {
			m.ring.SetProgressCap(render.CapRound)
		}
		return m, nil
	case "ctrl+t":
		m.curve = (m.curve + 1) % len(curveNames)
		c, _ := anim.ParseCurve(curveNames[m.curve])
		m.ring.SetInterpolator(c)
		return m, nil
	case "ctrl+s":
		if m.saving {
			return m, nil
		}
		m.saving = true
		return m, exportPNG(m.ring.Frame(), m.host.width, time.Now())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// layout fits the ring into the space the window leaves after the chrome.
// Braille dots are square, so the pixel area is measured in dots.
func (m *Model) layout() {
	m.host.relayout = false
	if m.width <= 0 || m.height <= 0 {
		return
	}
	w, h := term.PixelSize(m.width-4, m.height-chromeLines)
	side := m.ring.Measure(
		geometry.Constraint{Mode: geometry.AtMost, Size: max(w, 0)},
		geometry.Constraint{Mode: geometry.AtMost, Size: max(h, 0)},
		geometry.Padding{},
	)
	if side <= 0 {
		return
	}
	if err := m.paint.resize(side); err != nil {
		m.log.Warn("resize canvas", "err", err)
		return
	}
	m.host.width, m.host.height = side, side
	m.ring.OnSizeChanged()
	m.log.Debug("layout", "window", fmt.Sprintf("%dx%d", m.width, m.height), "side", side)
}

func (m *Model) setStatus(s string, isErr bool) tea.Cmd {
	m.status = s
	m.statusErr = isErr
	m.statusSeq++
	return expireStatus(m.statusSeq)
}

// frame redraws the ring when the widget asked for it.
func (m Model) frame() string {
	if !m.host.dirty {
		return m.paint.last
	}
	m.host.dirty = false
	return m.paint.paint(m.ring, m.log)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("ringbar") + "\n\n")

	ring := m.frame()
	for _, line := range strings.Split(ring, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	b.WriteString("  " + valueStyle.Render(renderProgressLine(m.ring.Progress(), m.ring.MaxProgress(), m.ring.SweepAngle())) + "\n")
	b.WriteString("  " + detailStyle.Render(renderSettings(
		m.ring.Direction(),
		m.ring.AnimationEnabled(),
		m.ring.DotEnabled(),
		m.ring.FillBackgroundEnabled(),
		m.ring.ProgressCap().String(),
		curveNames[m.curve],
	)) + "\n\n")

	b.WriteString("  " + m.input.View() + "\n")
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("  " + style.Render(m.status) + "\n")
	}
	b.WriteString("\n  " + helpStyle.Render(helpText()) + "\n")

	view := b.String()
	if pad := m.height - lipgloss.Height(view); pad > 0 {
		view += strings.Repeat("\n", pad)
	}
	return view
}
