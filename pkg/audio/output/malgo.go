//go:build !headless

// ABOUTME: Malgo-based audio output implementation
// ABOUTME: Uses miniaudio via malgo, whose device thread calls the fill callback directly
package output

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
	"github.com/gen2brain/malgo"
)

// Malgo output implementation using malgo/miniaudio library
type Malgo struct {
	mu       sync.Mutex
	malgoCtx *malgo.AllocatedContext
	device   *malgo.Device
}

// NewMalgo creates a new Malgo output
func NewMalgo() Device {
	return &Malgo{}
}

// Open initializes the playback device and starts it
func (m *Malgo) Open(format audio.Format, framesPerBuffer int, fill FillFunc) error {
	if err := validateOpen(format, framesPerBuffer, fill); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device != nil {
		return ErrAlreadyOpen
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize malgo context: %w", err)
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatS16
	deviceConfig.Playback.Channels = uint32(format.Channels)
	deviceConfig.SampleRate = uint32(format.SampleRate)
	deviceConfig.PeriodSizeInFrames = uint32(framesPerBuffer)
	deviceConfig.Alsa.NoMMap = 1

	frameSize := format.FrameSize()
	onSamples := func(pOutputSample, pInputSamples []byte, frameCount uint32) {
		n := int(frameCount) * frameSize
		if n > len(pOutputSample) {
			n = len(pOutputSample)
		}
		fill(pOutputSample[:n])
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onSamples,
	})
	if err != nil {
		releaseContext(ctx)
		return fmt.Errorf("failed to initialize playback device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		releaseContext(ctx)
		return fmt.Errorf("failed to start device: %w", err)
	}

	m.malgoCtx = ctx
	m.device = device

	log.Printf("Audio output initialized: %dHz, %d channel(s), %d frames/period (malgo/S16)",
		format.SampleRate, format.Channels, framesPerBuffer)

	return nil
}

// Close stops the device and releases the miniaudio context.
// ma_device_uninit joins the device thread, so no callback runs afterwards.
func (m *Malgo) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	if m.device != nil {
		if err := m.device.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("device stop: %w", err))
		}
		m.device.Uninit()
		m.device = nil
	}

	if m.malgoCtx != nil {
		if err := releaseContext(m.malgoCtx); err != nil {
			errs = append(errs, err)
		}
		m.malgoCtx = nil
	}

	return errors.Join(errs...)
}

// releaseContext uninitializes and frees a malgo context
func releaseContext(ctx *malgo.AllocatedContext) error {
	err := ctx.Uninit()
	ctx.Free()
	if err != nil {
		log.Printf("Warning: malgo context uninit error: %v", err)
		return fmt.Errorf("context uninit: %w", err)
	}
	return nil
}
