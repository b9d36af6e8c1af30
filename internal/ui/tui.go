// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the playback status view
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// QuitMsg signals the user asked to stop playback
type QuitMsg struct{}

// Control carries requests from the TUI back to the caller
type Control struct {
	Quit chan QuitMsg
}

// NewControl creates a new control handler
func NewControl() *Control {
	return &Control{
		Quit: make(chan QuitMsg, 1),
	}
}

// requestQuit posts a quit request without blocking. Safe on a nil Control.
func (c *Control) requestQuit() {
	if c == nil {
		return
	}
	select {
	case c.Quit <- QuitMsg{}:
	default:
	}
}

// NewModel creates a new TUI model
func NewModel(ctrl *Control) Model {
	return Model{
		state:   "idle",
		control: ctrl,
	}
}

// Run creates the TUI program; the caller starts it with p.Run
func Run(ctrl *Control) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())
	return p, nil
}
