// ABOUTME: Diagnostic app tracing the playback fill callback
// ABOUTME: Plays a short tone on the null device and prints cursor movement
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
	"github.com/Resonate-Protocol/sinewave-go/pkg/audio/output"
	"github.com/Resonate-Protocol/sinewave-go/pkg/playback"
	"github.com/Resonate-Protocol/sinewave-go/pkg/signal"
)

var (
	sampleRate = flag.Int("rate", 8000, "Sample rate in Hz")
	frequency  = flag.Float64("freq", 440, "Tone frequency in Hz")
	duration   = flag.Float64("duration", 0.05, "Signal duration in seconds")
	frames     = flag.Int("frames", 160, "Frames per callback")
	callbacks  = flag.Int("callbacks", 8, "Callbacks to trace before stopping")
)

// traceDevice wraps the null device and reports every callback
type traceDevice struct {
	output.Device

	mu      sync.Mutex
	session *playback.Session
	seen    int
	limit   int
	done    chan struct{}
}

func (d *traceDevice) Open(format audio.Format, framesPerBuffer int, fill output.FillFunc) error {
	return d.Device.Open(format, framesPerBuffer, func(dst []byte) {
		fill(dst)
		d.trace(dst)
	})
}

func (d *traceDevice) trace(dst []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.session == nil || d.seen >= d.limit {
		return
	}
	d.seen++

	st := d.session.Stats()
	first := int16(binary.LittleEndian.Uint16(dst))
	last := int16(binary.LittleEndian.Uint16(dst[len(dst)-2:]))
	fmt.Printf("callback %3d: %5d bytes  frames=%-7d loops=%-3d first=%6d last=%6d\n",
		d.seen, len(dst), st.Frames, st.Loops, first, last)

	if d.seen == d.limit {
		close(d.done)
	}
}

func (d *traceDevice) attach(s *playback.Session) {
	d.mu.Lock()
	d.session = s
	d.mu.Unlock()
}

// checkCounts rejects flag values the trace cannot run with
func checkCounts(frames, callbacks int) error {
	if frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", frames)
	}
	if callbacks < 1 {
		return fmt.Errorf("callbacks must be at least 1, got %d", callbacks)
	}
	return nil
}

func main() {
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)

	if err := checkCounts(*frames, *callbacks); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dev := &traceDevice{
		Device: output.NewNull(),
		limit:  *callbacks,
		done:   make(chan struct{}),
	}

	engine := playback.NewEngine(playback.Config{
		Backend:         output.BackendNull,
		FramesPerBuffer: *frames,
		NewDevice: func(string) (output.Device, error) {
			return dev, nil
		},
	})

	p := signal.Params{
		SampleRate: *sampleRate,
		Frequency:  *frequency,
		Duration:   *duration,
		Amplitude:  signal.DefaultParams().Amplitude,
	}

	fmt.Println("=== Fill Trace ===")
	fmt.Println(p)

	session, err := engine.Start(context.Background(), p)
	if err != nil {
		log.Fatalf("Start failed: %v", err)
	}
	dev.attach(session)

	fmt.Printf("Signal: %d samples, %d bytes per callback\n\n", session.Len(), engine.Config().FramesPerBuffer*audio.BytesPerSample)

	select {
	case <-dev.done:
	case <-time.After(10 * time.Second):
		log.Printf("Timed out waiting for callbacks")
	}

	if err := session.Stop(); err != nil {
		log.Fatalf("Stop failed: %v", err)
	}

	st := session.Stats()
	fmt.Printf("\nStopped after %d frames (%d loops, %v of audio)\n", st.Frames, st.Loops, st.Elapsed(p.SampleRate))
}
