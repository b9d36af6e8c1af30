// ABOUTME: Main application orchestration
// ABOUTME: Coordinates generator, playback engine, waveform window and TUI for the CLI
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Resonate-Protocol/sinewave-go/internal/ui"
	"github.com/Resonate-Protocol/sinewave-go/internal/window"
	"github.com/Resonate-Protocol/sinewave-go/pkg/playback"
	"github.com/Resonate-Protocol/sinewave-go/pkg/render"
	"github.com/Resonate-Protocol/sinewave-go/pkg/signal"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultSampleLimit asks Details to list len(buf) % 1000 samples
	DefaultSampleLimit = -1

	statsInterval = 100 * time.Millisecond
)

// Config holds application configuration
type Config struct {
	Params          signal.Params
	Backend         string
	FramesPerBuffer int

	// Hold is how long Play keeps the device running. Zero means the
	// signal duration; the signal loops if Hold is longer.
	Hold time.Duration

	// SampleLimit is how many samples Details lists; negative for default
	SampleLimit int

	UseTUI bool
	Debug  bool

	// Out receives Details output. Defaults to os.Stdout.
	Out io.Writer
}

// App runs one CLI operation
type App struct {
	config Config
	engine *playback.Engine
}

// New creates a new application
func New(config Config) *App {
	if config.Out == nil {
		config.Out = os.Stdout
	}

	return &App{
		config: config,
		engine: playback.NewEngine(playback.Config{
			Backend:         config.Backend,
			FramesPerBuffer: config.FramesPerBuffer,
		}),
	}
}

// Details prints the parameters followed by a listing of samples
func (a *App) Details() error {
	p := a.config.Params
	if _, err := fmt.Fprintln(a.config.Out, p.String()); err != nil {
		return err
	}

	buf, err := signal.Generate(p)
	if err != nil {
		return err
	}

	limit := a.config.SampleLimit
	if limit < 0 {
		limit = len(buf) % 1000
	}
	if limit > len(buf) {
		limit = len(buf)
	}

	for i := 0; i < limit; i++ {
		if _, err := fmt.Fprintf(a.config.Out, "Sample %d : %s\n", i, formatSample(buf[i])); err != nil {
			return err
		}
	}
	return nil
}

// Play streams the tone to the output device until the hold time passes,
// ctx is cancelled or the TUI asks to quit.
func (a *App) Play(ctx context.Context) error {
	session, err := a.engine.Start(ctx, a.config.Params)
	if err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}
	defer func() {
		if err := session.Stop(); err != nil {
			log.Printf("Error stopping playback: %v", err)
		}
	}()

	hold := a.hold()
	log.Printf("Playing %s for %v", a.config.Params, hold)

	timer := time.NewTimer(hold)
	defer timer.Stop()

	var tuiProg *tea.Program
	var ctrl *ui.Control
	if a.config.UseTUI {
		ctrl = ui.NewControl()
		tuiProg, err = ui.Run(ctrl)
		if err != nil {
			return fmt.Errorf("failed to start TUI: %w", err)
		}
		go func() {
			if _, err := tuiProg.Run(); err != nil {
				log.Printf("TUI error: %v", err)
			}
		}()
		tuiProg.Send(statusFor(session, hold))
	}

	var quit <-chan ui.QuitMsg
	if ctrl != nil {
		quit = ctrl.Quit
	}

	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timer.C:
			log.Printf("Hold time elapsed")
			a.finishTUI(tuiProg)
			return nil
		case <-ctx.Done():
			log.Printf("Playback interrupted")
			a.finishTUI(tuiProg)
			return nil
		case <-quit:
			log.Printf("Received quit signal from TUI")
			a.finishTUI(tuiProg)
			return nil
		case <-ticker.C:
			a.reportStats(tuiProg, session)
		}
	}
}

// Show draws the waveform in a window for hold
func (a *App) Show(hold time.Duration) error {
	buf, err := signal.Generate(a.config.Params)
	if err != nil {
		return err
	}

	points := render.Points(buf, render.ScreenWidth, render.ScreenHeight)
	if err := window.Show(points, window.DefaultOptions(hold)); err != nil {
		return fmt.Errorf("failed to show waveform: %w", err)
	}
	return nil
}

// hold returns the configured play time, defaulting to the signal duration
func (a *App) hold() time.Duration {
	if a.config.Hold > 0 {
		return a.config.Hold
	}
	return time.Duration(a.config.Params.Duration * float64(time.Second))
}

// reportStats forwards callback counters to the TUI, or to the log in debug mode
func (a *App) reportStats(tuiProg *tea.Program, session *playback.Session) {
	stats := session.Stats()
	if tuiProg != nil {
		tuiProg.Send(ui.StatusMsg{
			Elapsed:    stats.Elapsed(session.Params().SampleRate),
			Frames:     stats.Frames,
			Loops:      stats.Loops,
			Misaligned: stats.Misaligned,
		})
		return
	}
	if a.config.Debug {
		log.Printf("[DEBUG] session %s: frames=%d loops=%d misaligned=%d",
			session.ID(), stats.Frames, stats.Loops, stats.Misaligned)
	}
}

// finishTUI tells the TUI to exit and waits until it has restored the terminal
func (a *App) finishTUI(tuiProg *tea.Program) {
	if tuiProg == nil {
		return
	}
	tuiProg.Send(ui.DoneMsg{})
	tuiProg.Wait()
}

// statusFor builds the initial TUI status for a session
func statusFor(session *playback.Session, hold time.Duration) ui.StatusMsg {
	p := session.Params()
	return ui.StatusMsg{
		SampleRate: p.SampleRate,
		Frequency:  p.Frequency,
		Duration:   p.Duration,
		Amplitude:  p.Amplitude,
		SessionID:  session.ID(),
		Backend:    session.Backend(),
		State:      session.State().String(),
		Hold:       hold,
	}
}

// formatSample prints a sample with six significant digits
func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
