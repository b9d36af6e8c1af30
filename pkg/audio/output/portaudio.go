//go:build portaudio && !headless

// ABOUTME: PortAudio output implementation
// ABOUTME: Cross-platform audio output using PortAudio's stream callback
package output

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
	"github.com/gordonklaus/portaudio"
)

// PortAudio output implementation
type PortAudio struct {
	mu      sync.Mutex
	stream  *portaudio.Stream
	scratch []byte
}

// NewPortAudio creates a new PortAudio output
func NewPortAudio() Device {
	return &PortAudio{}
}

// Open initializes PortAudio and starts a default output stream
func (p *PortAudio) Open(format audio.Format, framesPerBuffer int, fill FillFunc) error {
	if err := validateOpen(format, framesPerBuffer, fill); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream != nil {
		return ErrAlreadyOpen
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	// The callback decodes from scratch so it never allocates
	scratch := make([]byte, framesPerBuffer*format.FrameSize())
	callback := func(out []int16) {
		n := len(out) * audio.BytesPerSample
		if n > len(scratch) {
			n = len(scratch)
		}
		buf := scratch[:n]
		fill(buf)
		i := 0
		for ; i < n/audio.BytesPerSample; i++ {
			out[i] = int16(binary.LittleEndian.Uint16(buf[i*audio.BytesPerSample:]))
		}
		for ; i < len(out); i++ {
			out[i] = 0
		}
	}

	stream, err := portaudio.OpenDefaultStream(0, format.Channels, float64(format.SampleRate), framesPerBuffer, callback)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to start stream: %w", err)
	}

	p.stream = stream
	p.scratch = scratch

	log.Printf("Audio output initialized: %dHz, %d channel(s), %d frames/period (portaudio/S16)",
		format.SampleRate, format.Channels, framesPerBuffer)

	return nil
}

// Close stops the stream (waiting for the callback to finish) and terminates PortAudio
func (p *PortAudio) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream == nil {
		return nil
	}

	var errs []error
	if err := p.stream.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stream stop: %w", err))
	}
	if err := p.stream.Close(); err != nil {
		errs = append(errs, fmt.Errorf("stream close: %w", err))
	}
	if err := portaudio.Terminate(); err != nil {
		errs = append(errs, fmt.Errorf("terminate: %w", err))
	}
	p.stream = nil
	p.scratch = nil

	return errors.Join(errs...)
}
