// ABOUTME: Bubbletea model for the playback TUI
// ABOUTME: Shows the tone parameters, session state and callback counters
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(54)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Model represents the TUI state
type Model struct {
	// Tone
	sampleRate int
	frequency  float64
	duration   float64
	amplitude  float64

	// Session
	sessionID string
	backend   string
	state     string

	// Progress
	elapsed time.Duration
	hold    time.Duration

	// Stats
	frames     uint64
	loops      uint64
	misaligned uint64

	// Debug
	showDebug bool

	control *Control

	// Dimensions
	width  int
	height int
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StatusMsg:
		m.applyStatus(msg)
	case DoneMsg:
		m.state = "closed"
		return m, tea.Quit
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sine Wave Player"))
	b.WriteString("\n")
	b.WriteString(m.renderTone())
	b.WriteString(m.renderSession())
	b.WriteString(m.renderProgress())
	b.WriteString(m.renderStats())
	if m.showDebug {
		b.WriteString(m.renderDebug())
	}

	return boxStyle.Render(b.String()) + "\n" + helpStyle.Render("d:Debug  q:Stop") + "\n"
}

// renderTone renders the signal parameters
func (m Model) renderTone() string {
	if m.sampleRate == 0 {
		return "No signal\n"
	}
	return fmt.Sprintf("%s %gHz at %dHz, %gs, amplitude %g\n",
		labelStyle.Render("Tone:"), m.frequency, m.sampleRate, m.duration, m.amplitude)
}

// renderSession renders device and state
func (m Model) renderSession() string {
	backend := m.backend
	if backend == "" {
		backend = "-"
	}
	return fmt.Sprintf("%s %s  %s %s\n",
		labelStyle.Render("State:"), m.state, labelStyle.Render("Output:"), backend)
}

// renderProgress renders elapsed time against the hold time
func (m Model) renderProgress() string {
	if m.hold <= 0 {
		return fmt.Sprintf("%s %s\n", labelStyle.Render("Elapsed:"), m.elapsed.Truncate(time.Millisecond))
	}
	return fmt.Sprintf("%s [%s] %s / %s\n",
		labelStyle.Render("Elapsed:"),
		renderBar(int(m.elapsed), int(m.hold), 20),
		m.elapsed.Truncate(time.Millisecond), m.hold)
}

// renderStats renders callback counters
func (m Model) renderStats() string {
	return fmt.Sprintf("%s frames %d  loops %d\n", labelStyle.Render("Stats:"), m.frames, m.loops)
}

// renderDebug renders debug information
func (m Model) renderDebug() string {
	return fmt.Sprintf("%s session %s  misaligned %d\n",
		labelStyle.Render("Debug:"), m.sessionID, m.misaligned)
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.control.requestQuit()
		return m, tea.Quit
	case "d":
		m.showDebug = !m.showDebug
	}

	return m, nil
}

// applyStatus updates model from status message
func (m *Model) applyStatus(msg StatusMsg) {
	if msg.SampleRate != 0 {
		m.sampleRate = msg.SampleRate
		m.frequency = msg.Frequency
		m.duration = msg.Duration
		m.amplitude = msg.Amplitude
	}
	if msg.SessionID != "" {
		m.sessionID = msg.SessionID
	}
	if msg.Backend != "" {
		m.backend = msg.Backend
	}
	if msg.State != "" {
		m.state = msg.State
	}
	if msg.Hold != 0 {
		m.hold = msg.Hold
	}
	if msg.Elapsed != 0 {
		m.elapsed = msg.Elapsed
	}
	if msg.Frames != 0 {
		m.frames = msg.Frames
		m.loops = msg.Loops
		m.misaligned = msg.Misaligned
	}
}

// StatusMsg updates TUI state. Zero fields leave the current value alone.
type StatusMsg struct {
	SampleRate int
	Frequency  float64
	Duration   float64
	Amplitude  float64
	SessionID  string
	Backend    string
	State      string
	Hold       time.Duration
	Elapsed    time.Duration
	Frames     uint64
	Loops      uint64
	Misaligned uint64
}

// DoneMsg tells the TUI playback has finished
type DoneMsg struct{}

// Utility functions
func renderBar(value, max, width int) string {
	if max <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(int64(value) * int64(width) / int64(max))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
