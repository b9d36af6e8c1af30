// ABOUTME: Audio output package for playing audio
// ABOUTME: Provides the callback-driven Device interface and its backends
// Package output provides audio playback devices driven by a fill callback.
//
// Supported backends:
//   - malgo: miniaudio via gen2brain/malgo (default)
//   - oto: ebitengine/oto v3
//   - portaudio: gordonklaus/portaudio (build with -tags portaudio)
//   - null: no hardware, fill is called at real-time pace
//
// Building with -tags headless drops the cgo backends; only null remains usable.
//
// Example:
//
//	dev, err := output.New("malgo")
//	err = dev.Open(audio.MonoS16(44100), 4096, func(dst []byte) {
//	    // write len(dst) bytes of S16LE PCM
//	})
//	defer dev.Close()
package output
