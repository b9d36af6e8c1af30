// ABOUTME: Signal parameter definitions and validation
// ABOUTME: Describes sample rate, frequency, duration and amplitude of a tone
package signal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MaxSamples bounds the size of a generated buffer
const MaxSamples = math.MaxInt32

// ErrInvalidParameters is returned when Params violate a precondition
var ErrInvalidParameters = errors.New("invalid signal parameters")

// Params describes a mono sine tone
type Params struct {
	SampleRate int     // samples per second
	Frequency  float64 // Hz
	Duration   float64 // seconds
	Amplitude  float64 // peak value, nominally within [-1, 1]
}

// DefaultParams returns the stock tone: A4 for two seconds at CD rate
func DefaultParams() Params {
	return Params{
		SampleRate: 44100,
		Frequency:  440.0,
		Duration:   2.0,
		Amplitude:  1.0,
	}
}

// Validate checks the parameter preconditions
func (p Params) Validate() error {
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameters, p.SampleRate)
	}
	if !(p.Frequency > 0) || math.IsInf(p.Frequency, 0) {
		return fmt.Errorf("%w: frequency must be positive and finite, got %v", ErrInvalidParameters, p.Frequency)
	}
	if !(p.Duration >= 0) || math.IsInf(p.Duration, 0) {
		return fmt.Errorf("%w: duration must be non-negative and finite, got %v", ErrInvalidParameters, p.Duration)
	}
	if math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
		return fmt.Errorf("%w: amplitude must be finite, got %v", ErrInvalidParameters, p.Amplitude)
	}
	if n := math.Round(float64(p.SampleRate) * p.Duration); n > MaxSamples {
		return fmt.Errorf("%w: %.0f samples exceeds limit of %d", ErrInvalidParameters, n, MaxSamples)
	}
	return nil
}

// NumSamples returns round(SampleRate * Duration).
// Only meaningful for parameters that pass Validate.
func (p Params) NumSamples() int {
	return int(math.Round(float64(p.SampleRate) * p.Duration))
}

// String formats the parameters as a single details line
func (p Params) String() string {
	return fmt.Sprintf("SampleRate: %d , Frequency: %sHz , Duration: %ss , Amplitude: %s",
		p.SampleRate, formatFloat(p.Frequency), formatFloat(p.Duration), formatFloat(p.Amplitude))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
