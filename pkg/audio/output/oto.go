//go:build !headless

// ABOUTME: Oto-based audio output implementation
// ABOUTME: Adapts the fill callback to the io.Reader oto's mixer pulls from
package output

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
	"github.com/ebitengine/oto/v3"
)

// oto allows one context per process, so it is shared by every Oto output.
// otoPlayers counts open outputs; the context is suspended only when it drops to zero.
var (
	otoMu      sync.Mutex
	otoCtx     *oto.Context
	otoRate    int
	otoChans   int
	otoPlayers int
)

// sharedContext returns the process-wide oto context, creating it on first
// use, and registers one more open output against it
func sharedContext(format audio.Format, bufferSize time.Duration) (*oto.Context, error) {
	otoMu.Lock()
	defer otoMu.Unlock()

	if otoCtx != nil {
		if otoRate != format.SampleRate || otoChans != format.Channels {
			return nil, fmt.Errorf("oto context already running at %dHz/%dch, cannot switch to %dHz/%dch",
				otoRate, otoChans, format.SampleRate, format.Channels)
		}
		if otoPlayers == 0 {
			if err := otoCtx.Resume(); err != nil {
				return nil, fmt.Errorf("failed to resume oto context: %w", err)
			}
		}
		otoPlayers++
		return otoCtx, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	otoCtx = ctx
	otoRate = format.SampleRate
	otoChans = format.Channels
	otoPlayers = 1
	return ctx, nil
}

// releaseShared drops one open output and suspends the context once none remain
func releaseShared() error {
	otoMu.Lock()
	defer otoMu.Unlock()

	if otoPlayers > 0 {
		otoPlayers--
	}
	if otoPlayers > 0 || otoCtx == nil {
		return nil
	}
	if err := otoCtx.Suspend(); err != nil {
		return fmt.Errorf("context suspend: %w", err)
	}
	return nil
}

// fillReader feeds oto's player from a FillFunc
type fillReader struct {
	mu   sync.Mutex
	fill FillFunc
}

// Read hands p to the fill callback. After detach it reports EOF.
func (r *fillReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fill == nil {
		return 0, io.EOF
	}
	r.fill(p)
	return len(p), nil
}

// detach blocks until any in-flight Read returns, then disables the callback
func (r *fillReader) detach() {
	r.mu.Lock()
	r.fill = nil
	r.mu.Unlock()
}

// Oto output implementation using oto library
type Oto struct {
	mu     sync.Mutex
	player *oto.Player
	reader *fillReader
}

// NewOto creates a new Oto output
func NewOto() Device {
	return &Oto{}
}

// Open binds the fill callback to a new oto player and starts it
func (o *Oto) Open(format audio.Format, framesPerBuffer int, fill FillFunc) error {
	if err := validateOpen(format, framesPerBuffer, fill); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player != nil {
		return ErrAlreadyOpen
	}

	period := time.Duration(framesPerBuffer) * time.Second / time.Duration(format.SampleRate)
	ctx, err := sharedContext(format, period)
	if err != nil {
		return err
	}

	o.reader = &fillReader{fill: fill}
	o.player = ctx.NewPlayer(o.reader)
	o.player.SetBufferSize(framesPerBuffer * format.FrameSize())
	o.player.Play()

	log.Printf("Audio output initialized: %dHz, %d channel(s), %d frames/period (oto/S16)",
		format.SampleRate, format.Channels, framesPerBuffer)

	return nil
}

// Close detaches the callback, closes the player and suspends the context
// if no other Oto output is still open
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player == nil {
		return nil
	}

	var errs []error
	o.reader.detach()
	if err := o.player.Close(); err != nil {
		errs = append(errs, fmt.Errorf("player close: %w", err))
	}
	o.player = nil
	o.reader = nil

	if err := releaseShared(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
