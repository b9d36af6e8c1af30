// ABOUTME: Waveform window options shared by the ebiten and headless builds
// ABOUTME: Holds title, size, colours and how long the window stays visible
package window

import (
	"errors"
	"image/color"
	"time"

	"github.com/Resonate-Protocol/sinewave-go/pkg/render"
)

// ErrNoDisplay is returned by Show in builds without a window system
var ErrNoDisplay = errors.New("no display available")

// Options controls the waveform window
type Options struct {
	Title      string
	Width      int
	Height     int
	Color      color.RGBA
	Background color.RGBA
	Hold       time.Duration // how long the frame stays up
}

// DefaultOptions returns a 1600x900 red-on-black window held for hold
func DefaultOptions(hold time.Duration) Options {
	return Options{
		Title:      "Sine Wave",
		Width:      render.ScreenWidth,
		Height:     render.ScreenHeight,
		Color:      render.Red,
		Background: render.Black,
		Hold:       hold,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions(o.Hold)
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Color == (color.RGBA{}) {
		o.Color = d.Color
	}
	if o.Background == (color.RGBA{}) {
		o.Background = d.Background
	}
	if o.Hold < 0 {
		o.Hold = 0
	}
	return o
}

// deadline tracks when the window should close
type deadline struct {
	at  time.Time
	now func() time.Time
}

func newDeadline(hold time.Duration, now func() time.Time) deadline {
	return deadline{at: now().Add(hold), now: now}
}

func (d deadline) expired() bool {
	return !d.now().Before(d.at)
}
