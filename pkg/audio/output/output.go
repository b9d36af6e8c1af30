// ABOUTME: Audio output interface definition
// ABOUTME: Common callback-driven interface for audio playback backends
package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
)

// Backend names accepted by New
const (
	BackendMalgo     = "malgo"
	BackendOto       = "oto"
	BackendPortAudio = "portaudio"
	BackendNull      = "null"

	DefaultBackend = BackendMalgo
)

var (
	ErrUnknownBackend     = errors.New("unknown audio backend")
	ErrBackendUnavailable = errors.New("audio backend not available in this build")
	ErrAlreadyOpen        = errors.New("output already open")
	ErrUnsupportedFormat  = errors.New("unsupported output format")
)

// FillFunc is invoked by the host audio subsystem on its own thread to
// request the next len(dst) bytes of PCM. Invocations for one device never
// overlap. Implementations must not block or allocate.
type FillFunc func(dst []byte)

// Device represents a pull-driven audio output device
type Device interface {
	// Open configures the device for format, registers fill and starts
	// playback. framesPerBuffer is the requested callback period.
	Open(format audio.Format, framesPerBuffer int, fill FillFunc) error

	// Close stops playback, waits until no fill call is running and
	// releases all resources. Every release step is attempted even if an
	// earlier one fails. Closing a closed device is a no-op.
	Close() error
}

// New returns a device for the named backend
func New(name string) (Device, error) {
	switch strings.ToLower(name) {
	case "", BackendMalgo:
		return NewMalgo(), nil
	case BackendOto:
		return NewOto(), nil
	case BackendPortAudio:
		return NewPortAudio(), nil
	case BackendNull:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
}

// Backends lists the backend names accepted by New
func Backends() []string {
	return []string{BackendMalgo, BackendOto, BackendPortAudio, BackendNull}
}

// validateOpen checks the arguments shared by every backend's Open
func validateOpen(format audio.Format, framesPerBuffer int, fill FillFunc) error {
	if fill == nil {
		return errors.New("fill callback is nil")
	}
	if format.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, format.SampleRate)
	}
	if format.Channels <= 0 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, format.Channels)
	}
	if format.BitDepth != audio.BitDepth16 {
		return fmt.Errorf("%w: bit depth %d (supported: 16)", ErrUnsupportedFormat, format.BitDepth)
	}
	if framesPerBuffer <= 0 {
		return fmt.Errorf("%w: %d frames per buffer", ErrUnsupportedFormat, framesPerBuffer)
	}
	return nil
}
