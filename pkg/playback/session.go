// ABOUTME: Playback session and its fill callback
// ABOUTME: Owns the cursor that makes successive callbacks one continuous looping signal
package playback

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
	"github.com/Resonate-Protocol/sinewave-go/pkg/audio/output"
	"github.com/Resonate-Protocol/sinewave-go/pkg/signal"
	"github.com/google/uuid"
)

// State is the lifecycle state of a Session
type State int32

const (
	StateClosed State = iota
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Stats are counters maintained by the fill callback
type Stats struct {
	Frames     uint64 // frames handed to the device, silence included
	Loops      uint64 // times the cursor wrapped back to the start of the buffer
	Misaligned uint64 // callbacks whose length was not a whole number of samples
}

// Elapsed converts delivered frames to playing time at sampleRate
func (st Stats) Elapsed(sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(st.Frames) * time.Second / time.Duration(sampleRate)
}

// Session is one playback of one generated buffer on one device.
// Sessions are never reused: Start creates one, Stop ends it.
type Session struct {
	id      uuid.UUID
	params  signal.Params
	backend string
	device  output.Device

	// pcm is the whole signal pre-encoded as S16LE; immutable
	pcm    []byte
	length int // in samples

	// cursor is the next sample index to emit. Only fill touches it while
	// the device runs; Stop resets it after the device is quiesced.
	cursor int

	state      atomic.Int32
	frames     atomic.Uint64
	loops      atomic.Uint64
	misaligned atomic.Uint64

	stopOnce sync.Once
}

func newSession(p signal.Params, buf signal.Buffer, dev output.Device, backend string) *Session {
	pcm := make([]byte, len(buf)*audio.BytesPerSample)
	audio.EncodeS16LE(pcm, buf)

	return &Session{
		id:      uuid.New(),
		params:  p,
		backend: backend,
		device:  dev,
		pcm:     pcm,
		length:  len(buf),
	}
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id.String()
}

// Params returns the parameters the signal was generated from
func (s *Session) Params() signal.Params {
	return s.params
}

// Backend returns the output backend name
func (s *Session) Backend() string {
	return s.backend
}

// Len returns the signal length in samples
func (s *Session) Len() int {
	return s.length
}

// State returns the current lifecycle state. A nil session is closed.
func (s *Session) State() State {
	if s == nil {
		return StateClosed
	}
	return State(s.state.Load())
}

// Stats returns a snapshot of the callback counters
func (s *Session) Stats() Stats {
	return Stats{
		Frames:     s.frames.Load(),
		Loops:      s.loops.Load(),
		Misaligned: s.misaligned.Load(),
	}
}

// Stop halts playback and releases the device. It may be called from any
// goroutine, any number of times, and on a nil session; only the first call
// does anything. When Stop returns no fill callback is running or will run.
// Device release is always attempted; its error, if any, is returned.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}

	var err error
	s.stopOnce.Do(func() {
		if s.device != nil {
			err = s.device.Close()
		}
		s.cursor = 0
		s.state.Store(int32(StateClosed))

		if err != nil {
			log.Printf("Playback session %s stopped with error: %v", s.id, err)
		} else {
			log.Printf("Playback session %s stopped after %d frames", s.id, s.frames.Load())
		}
	})
	return err
}

// fill is the device callback. dst holds len(dst)/2 S16 samples; a trailing
// odd byte is zeroed. Samples are copied from the cursor onwards, wrapping
// at the end of the signal. An empty signal yields silence.
//
// Runs on the host audio thread: no allocation, no locks, no blocking.
func (s *Session) fill(dst []byte) {
	whole := len(dst) - len(dst)%audio.BytesPerSample
	if whole != len(dst) {
		s.misaligned.Add(1)
		clear(dst[whole:])
	}
	out := dst[:whole]
	s.frames.Add(uint64(whole / audio.BytesPerSample))

	if s.length == 0 {
		clear(out)
		return
	}

	for len(out) > 0 {
		n := copy(out, s.pcm[s.cursor*audio.BytesPerSample:])
		out = out[n:]
		s.cursor += n / audio.BytesPerSample
		if s.cursor == s.length {
			s.cursor = 0
			s.loops.Add(1)
		}
	}
}
