// ABOUTME: Tests for TUI model and state management
// ABOUTME: Tests status updates, key handling and rendering helpers
package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModel(t *testing.T) {
	model := NewModel(nil) // Control is optional for testing

	if model.state != "idle" {
		t.Errorf("expected initial state 'idle', got '%s'", model.state)
	}
	if model.showDebug {
		t.Error("expected showDebug to be false initially")
	}
	if model.frames != 0 {
		t.Errorf("expected no frames initially, got %d", model.frames)
	}
}

func TestStatusMsgTone(t *testing.T) {
	model := NewModel(nil)

	model.applyStatus(StatusMsg{
		SampleRate: 44100,
		Frequency:  440,
		Duration:   2,
		Amplitude:  1,
		Backend:    "malgo",
		State:      "playing",
		SessionID:  "abc",
		Hold:       2 * time.Second,
	})

	if model.sampleRate != 44100 || model.frequency != 440 {
		t.Errorf("tone not applied: %d Hz / %v Hz", model.sampleRate, model.frequency)
	}
	if model.backend != "malgo" {
		t.Errorf("expected backend 'malgo', got '%s'", model.backend)
	}
	if model.state != "playing" {
		t.Errorf("expected state 'playing', got '%s'", model.state)
	}
	if model.sessionID != "abc" {
		t.Errorf("expected session 'abc', got '%s'", model.sessionID)
	}
	if model.hold != 2*time.Second {
		t.Errorf("expected hold 2s, got %v", model.hold)
	}
}

func TestStatusMsgStats(t *testing.T) {
	model := NewModel(nil)
	model.applyStatus(StatusMsg{State: "playing"})

	model.applyStatus(StatusMsg{
		Elapsed: 500 * time.Millisecond,
		Frames:  22050,
		Loops:   3,
	})

	if model.frames != 22050 || model.loops != 3 {
		t.Errorf("stats not applied: frames=%d loops=%d", model.frames, model.loops)
	}
	if model.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", model.elapsed)
	}
	// Partial update leaves other fields alone
	if model.state != "playing" {
		t.Errorf("state clobbered by stats update: '%s'", model.state)
	}
}

func TestQuitKeySignalsControl(t *testing.T) {
	ctrl := NewControl()
	model := NewModel(ctrl)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	select {
	case <-ctrl.Quit:
	default:
		t.Error("expected quit request on control channel")
	}

	// A second quit must not block on the full channel
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
}

func TestQuitKeyWithoutControl(t *testing.T) {
	model := NewModel(nil)
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestDebugToggle(t *testing.T) {
	model := NewModel(nil)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m := updated.(Model)
	if !m.showDebug {
		t.Error("expected debug on after 'd'")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if updated.(Model).showDebug {
		t.Error("expected debug off after second 'd'")
	}
}

func TestDoneMsg(t *testing.T) {
	model := NewModel(nil)
	updated, cmd := model.Update(DoneMsg{})
	if cmd == nil {
		t.Error("expected quit command on done")
	}
	if updated.(Model).state != "closed" {
		t.Errorf("expected state 'closed', got '%s'", updated.(Model).state)
	}
}

func TestViewBeforeResize(t *testing.T) {
	if v := NewModel(nil).View(); v != "Loading..." {
		t.Errorf("expected loading view, got %q", v)
	}
}

func TestViewRendersTone(t *testing.T) {
	model := NewModel(nil)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := updated.(Model)
	m.applyStatus(StatusMsg{SampleRate: 8000, Frequency: 1000, Duration: 0.001, Amplitude: 1, Backend: "null"})

	view := m.View()
	for _, want := range []string{"1000Hz", "8000Hz", "null"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		value, max int
		want       string
	}{
		{0, 10, "░░░░░"},
		{5, 10, "██░░░"},
		{10, 10, "█████"},
		{20, 10, "█████"},
		{3, 0, "░░░░░"},
	}

	for _, tt := range tests {
		if got := renderBar(tt.value, tt.max, 5); got != tt.want {
			t.Errorf("renderBar(%d, %d) = %q, want %q", tt.value, tt.max, got, tt.want)
		}
	}
}
