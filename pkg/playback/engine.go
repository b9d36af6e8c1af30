// ABOUTME: Playback engine: device selection and session start-up
// ABOUTME: Opens a device for a freshly generated buffer without ever hanging the caller
package playback

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
	"github.com/Resonate-Protocol/sinewave-go/pkg/audio/output"
	"github.com/Resonate-Protocol/sinewave-go/pkg/signal"
)

const (
	// DefaultFramesPerBuffer is the callback period requested from devices
	DefaultFramesPerBuffer = 4096

	// DefaultOpenTimeout bounds how long Start waits for a device to open
	DefaultOpenTimeout = 5 * time.Second
)

// ErrDeviceUnavailable is returned when no output device could be opened
var ErrDeviceUnavailable = errors.New("audio device unavailable")

// Config configures an Engine
type Config struct {
	// Backend names the output backend (see output.Backends)
	Backend string

	// FramesPerBuffer is the requested callback buffer size in frames
	FramesPerBuffer int

	// OpenTimeout bounds device open. Zero means DefaultOpenTimeout.
	OpenTimeout time.Duration

	// NewDevice overrides backend construction. Defaults to output.New.
	NewDevice func(backend string) (output.Device, error)
}

// Engine starts playback sessions
type Engine struct {
	config Config
}

// NewEngine creates an engine, applying defaults to unset config fields
func NewEngine(config Config) *Engine {
	if config.Backend == "" {
		config.Backend = output.DefaultBackend
	}
	if config.FramesPerBuffer <= 0 {
		config.FramesPerBuffer = DefaultFramesPerBuffer
	}
	if config.OpenTimeout <= 0 {
		config.OpenTimeout = DefaultOpenTimeout
	}
	if config.NewDevice == nil {
		config.NewDevice = output.New
	}
	return &Engine{config: config}
}

// Config returns the effective configuration
func (e *Engine) Config() Config {
	return e.config
}

// Start generates the signal for p, opens a mono S16 device at p.SampleRate
// and begins playback. It returns once the device is running.
//
// Invalid parameters yield an error wrapping signal.ErrInvalidParameters.
// Any device failure, open timeout or ctx cancellation yields an error
// wrapping ErrDeviceUnavailable; no device is left open in that case.
func (e *Engine) Start(ctx context.Context, p signal.Params) (*Session, error) {
	buf, err := signal.Generate(p)
	if err != nil {
		return nil, err
	}

	dev, err := e.config.NewDevice(e.config.Backend)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	s := newSession(p, buf, dev, e.config.Backend)
	format := audio.MonoS16(p.SampleRate)

	if err := e.open(ctx, dev, format, s.fill); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeviceUnavailable, e.config.Backend, err)
	}

	s.state.Store(int32(StatePlaying))
	log.Printf("Playback session %s started: %s (%d samples, backend %s)",
		s.id, p, len(buf), e.config.Backend)

	return s, nil
}

// open runs dev.Open with a deadline. If the deadline passes first, the
// device is closed in the background as soon as its Open finishes.
func (e *Engine) open(ctx context.Context, dev output.Device, format audio.Format, fill output.FillFunc) error {
	ctx, cancel := context.WithTimeout(ctx, e.config.OpenTimeout)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		result <- dev.Open(format, e.config.FramesPerBuffer, fill)
	}()

	select {
	case err := <-result:
		if err != nil {
			// Open may have acquired part of its resources before failing
			if cerr := dev.Close(); cerr != nil {
				log.Printf("Warning: cleanup after failed open: %v", cerr)
			}
		}
		return err
	case <-ctx.Done():
		go func() {
			<-result
			if cerr := dev.Close(); cerr != nil {
				log.Printf("Warning: cleanup after abandoned open: %v", cerr)
			}
		}()
		return fmt.Errorf("device open: %w", ctx.Err())
	}
}
