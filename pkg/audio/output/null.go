// ABOUTME: Null audio output implementation
// ABOUTME: Drives the fill callback from a goroutine at real-time pace without hardware
package output

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
)

// Null discards audio but calls fill once per buffer period, like a real
// device would. Useful on machines without sound hardware.
type Null struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}

	callbacks atomic.Uint64
}

// NewNull creates a new Null output
func NewNull() Device {
	return &Null{}
}

// Open starts the pacing goroutine
func (n *Null) Open(format audio.Format, framesPerBuffer int, fill FillFunc) error {
	if err := validateOpen(format, framesPerBuffer, fill); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.stop != nil {
		return ErrAlreadyOpen
	}

	period := time.Duration(framesPerBuffer) * time.Second / time.Duration(format.SampleRate)
	if period <= 0 {
		period = time.Millisecond
	}

	buf := make([]byte, framesPerBuffer*format.FrameSize())
	n.stop = make(chan struct{})
	n.done = make(chan struct{})
	go n.run(buf, period, fill, n.stop, n.done)

	log.Printf("Audio output initialized: %dHz, %d channel(s), %d frames/period (null, %v period)",
		format.SampleRate, format.Channels, framesPerBuffer, period)

	return nil
}

func (n *Null) run(buf []byte, period time.Duration, fill FillFunc, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			fill(buf)
			n.callbacks.Add(1)
		}
	}
}

// Close stops the pacing goroutine and waits for it to exit
func (n *Null) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.stop == nil {
		return nil
	}

	close(n.stop)
	<-n.done
	n.stop = nil
	n.done = nil
	return nil
}

// Callbacks returns how many times fill has been invoked
func (n *Null) Callbacks() uint64 {
	return n.callbacks.Load()
}
