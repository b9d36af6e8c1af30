//go:build !headless

// ABOUTME: Ebiten window that draws a waveform polyline with axes
// ABOUTME: Renders once to an offscreen canvas and holds the frame until the deadline
package window

import (
	"fmt"
	"log"
	"time"

	"github.com/Resonate-Protocol/sinewave-go/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// waveform implements ebiten.Game
type waveform struct {
	opts     Options
	axes     []render.Segment
	segments []render.Segment
	canvas   *ebiten.Image
	deadline deadline
}

func newWaveform(points []render.Point, opts Options, now func() time.Time) *waveform {
	return &waveform{
		opts:     opts,
		axes:     render.Axes(opts.Width, opts.Height),
		segments: render.Polyline(points),
		deadline: newDeadline(opts.Hold, now),
	}
}

// Show opens a window, draws the points as a connected line over the axes
// and blocks until opts.Hold has elapsed or the window is closed.
// Must be called from the main goroutine.
func Show(points []render.Point, opts Options) error {
	opts = opts.withDefaults()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizable(false)
	ebiten.SetRunnableOnUnfocused(true)

	log.Printf("Showing waveform: %d points, %dx%d for %v", len(points), opts.Width, opts.Height, opts.Hold)

	if err := ebiten.RunGame(newWaveform(points, opts, time.Now)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update ends the game once the hold time is over
func (w *waveform) Update() error {
	if w.deadline.expired() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the cached canvas, building it on first use
func (w *waveform) Draw(screen *ebiten.Image) {
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(w.opts.Width, w.opts.Height)
		w.canvas.Fill(w.opts.Background)
		for _, s := range w.axes {
			strokeSegment(w.canvas, s, w.opts)
		}
		for _, s := range w.segments {
			strokeSegment(w.canvas, s, w.opts)
		}
	}
	screen.DrawImage(w.canvas, nil)
}

// Layout keeps the logical screen at the configured size
func (w *waveform) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.opts.Width, w.opts.Height
}

func strokeSegment(dst *ebiten.Image, s render.Segment, opts Options) {
	vector.StrokeLine(dst,
		float32(s.From.X), float32(s.From.Y),
		float32(s.To.X), float32(s.To.Y),
		1, opts.Color, true)
}
