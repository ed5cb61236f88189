// ABOUTME: Bubble Tea model that consumes Envelopes from the host event loop
// ABOUTME: Answers terminal queries via the PTY notifier and renders the screen tail plus a status bar

package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	riolog "github.com/mauromedda/rio-go/internal/log"
	"github.com/mauromedda/rio-go/internal/xterm"
	"github.com/mauromedda/rio-go/pkg/event"
)

// PTY is the write side of the PTY actor as seen by the UI.
type PTY interface {
	event.Notify
	event.OnResize
}

// Options configures a Model.
type Options struct {
	// Size seeds the cell dimensions and the geometry used until the host
	// reports its own.
	Size         event.WindowSize
	Palette      *xterm.Palette
	Blinking     bool
	VisualBell   bool
	BellDuration time.Duration
	// Host receives escape sequences meant for the outer terminal, such as
	// OSC 52 clipboard writes. Nil disables them.
	Host io.Writer
}

// bellDoneMsg ends a visual bell flash.
type bellDoneMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	pty    PTY
	screen *Screen
	opts   Options
	styles styles

	size       event.WindowSize
	cellWidth  uint16
	cellHeight uint16
	scale      float64

	title     string
	flashing  bool
	blinking  bool
	cursorOn  bool
	clipboard map[event.ClipboardType]string
	frames    int
}

// NewModel returns a model that writes to pty and renders screen.
func NewModel(pty PTY, screen *Screen, opts Options) Model {
	if screen == nil {
		screen = NewScreen(DefaultScrollback)
	}
	return Model{
		pty:        pty,
		screen:     screen,
		opts:       opts,
		styles:     newStyles(opts.Palette),
		size:       opts.Size,
		cellWidth:  opts.Size.CellWidth,
		cellHeight: opts.Size.CellHeight,
		scale:      1,
		blinking:   opts.Blinking,
		cursorOn:   true,
		clipboard:  make(map[event.ClipboardType]string),
	}
}

// Init sets the initial window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(defaultTitle)
}

// Update handles host input and loop envelopes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.pty != nil {
			m.pty.Notify(keyBytes(msg))
		}
		m.cursorOn = true
		return m, nil

	case bellDoneMsg:
		m.flashing = false
		return m, nil

	case event.Envelope:
		return m.handleApplication(msg.Payload)
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	lines := height - 1
	if lines < 1 || width < 1 {
		return
	}
	size := event.WindowSize{
		Lines:      uint16(min(lines, 0xffff)),
		Cols:       uint16(min(width, 0xffff)),
		CellWidth:  m.size.CellWidth,
		CellHeight: m.size.CellHeight,
	}
	if size == m.size {
		return
	}
	m.size = size
	if m.pty != nil {
		m.pty.OnResize(size)
	}
}

func (m Model) handleApplication(ev event.ApplicationEvent) (tea.Model, tea.Cmd) {
	switch e := ev.(type) {
	case event.Rio:
		return m.handleTerminal(e.Event)

	case event.ScaleFactorChanged:
		if e.Factor <= 0 || math.IsNaN(e.Factor) || math.IsInf(e.Factor, 0) {
			return m, nil
		}
		m.scale = e.Factor
		m.size.CellWidth = scaleCell(m.cellWidth, e.Factor)
		m.size.CellHeight = scaleCell(m.cellHeight, e.Factor)
		riolog.Debug("ui: scale %g, surface %s", e.Factor, e.Size)
		if m.pty != nil && !m.size.IsZero() {
			m.pty.OnResize(m.size)
		}

	case event.BlinkCursor:
		if m.blinking {
			m.cursorOn = !m.cursorOn
		}

	case event.BlinkCursorTimeout:
		m.blinking = false
		m.cursorOn = true

	case event.SearchNext:
		// No search overlay in this front end.

	case event.Frame:
		m.frames++
	}
	return m, nil
}

// scaleCell multiplies a cell dimension, saturating at the uint16 range.
func scaleCell(v uint16, factor float64) uint16 {
	scaled := float64(v) * factor
	if scaled >= math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(scaled)
}

func (m Model) handleTerminal(ev event.TerminalEvent) (tea.Model, tea.Cmd) {
	switch e := ev.(type) {
	case event.Wakeup, event.MouseCursorDirty:
		// Redraw only; View reads the screen.

	case event.Bell:
		if !m.opts.VisualBell {
			return m, m.writeHost("\a")
		}
		m.flashing = true
		return m, tea.Tick(m.bellDuration(), func(time.Time) tea.Msg { return bellDoneMsg{} })

	case event.Title:
		m.title = sanitizeTitle(e.Text)
		if m.title == "" {
			return m, tea.SetWindowTitle(defaultTitle)
		}
		return m, tea.SetWindowTitle(m.title)

	case event.ResetTitle:
		m.title = ""
		return m, tea.SetWindowTitle(defaultTitle)

	case event.PtyWrite:
		event.NotifyString(m.pty, e.Text)

	case event.TextAreaSizeRequest:
		event.NotifyString(m.pty, e.Format(m.size))

	case event.ColorRequest:
		if c, ok := m.opts.Palette.Color(e.Index); ok {
			event.NotifyString(m.pty, e.Format(c))
		}

	case event.ClipboardLoad:
		event.NotifyString(m.pty, e.Format(m.clipboard[e.Clipboard]))

	case event.ClipboardStore:
		m.clipboard[e.Clipboard] = e.Text
		return m, m.writeHost(xterm.SetClipboard(e.Clipboard, e.Text))

	case event.CursorBlinkingChange:
		m.blinking = !m.blinking
		m.cursorOn = true

	case event.Exit:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) bellDuration() time.Duration {
	if m.opts.BellDuration > 0 {
		return m.opts.BellDuration
	}
	return 150 * time.Millisecond
}

func (m Model) writeHost(seq string) tea.Cmd {
	host := m.opts.Host
	if host == nil {
		return nil
	}
	return func() tea.Msg {
		if _, err := io.WriteString(host, seq); err != nil {
			riolog.Debug("ui: host write: %v", err)
		}
		return nil
	}
}

// View renders the screen tail and the status bar.
func (m Model) View() string {
	rows, cols := int(m.size.Lines), int(m.size.Cols)
	if rows == 0 || cols == 0 {
		return ""
	}

	lines := m.screen.Tail(rows)
	var b strings.Builder
	for i := 0; i < rows; i++ {
		var line string
		if i < len(lines) {
			line = runewidth.Truncate(lines[i], cols, "")
		}
		if i == len(lines)-1 && m.cursorOn && runewidth.StringWidth(line) < cols {
			line += m.styles.cursor.Render(" ")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	body := b.String()
	if m.flashing {
		body = m.styles.flash.Render(body)
	}
	return body + m.statusLine(cols)
}

func (m Model) statusLine(cols int) string {
	right := m.styles.size.Render(fmt.Sprintf(" %dx%d ", m.size.Cols, m.size.Lines))
	title := m.title
	if title == "" {
		title = defaultTitle
	}
	room := cols - lipgloss.Width(right) - 2
	if room < 1 {
		return runewidth.Truncate(title, cols, "")
	}
	left := m.styles.status.Render(" " + runewidth.Truncate(title, room, "…") + " ")
	gap := cols - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + m.styles.size.Render(strings.Repeat(" ", gap)) + right
}

// Size returns the current PTY geometry.
func (m Model) Size() event.WindowSize {
	return m.size
}

// Title returns the current sanitized title, empty when reset.
func (m Model) Title() string {
	return m.title
}
