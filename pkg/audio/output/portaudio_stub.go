//go:build !portaudio || headless

// ABOUTME: PortAudio stub when library not available
// ABOUTME: Provides compile-time placeholder when PortAudio not installed
package output

import (
	"fmt"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
)

// PortAudio output implementation (stub)
type PortAudio struct{}

// NewPortAudio creates a new PortAudio output
func NewPortAudio() Device {
	return &PortAudio{}
}

// Open reports that PortAudio support was not compiled in
func (p *PortAudio) Open(format audio.Format, framesPerBuffer int, fill FillFunc) error {
	return fmt.Errorf("%w: portaudio (build with -tags portaudio)", ErrBackendUnavailable)
}

// Close is a no-op
func (p *PortAudio) Close() error {
	return nil
}
