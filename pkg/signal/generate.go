// ABOUTME: Sine wave sample generator
// ABOUTME: Computes each sample directly from its index for exact reproducibility
package signal

import "math"

// Buffer is a generated mono signal. Treat it as read-only once returned.
type Buffer []float64

// Generate synthesises amplitude * sin(2*pi*frequency*t) for t = i/SampleRate.
// Parameters are validated before anything is allocated. A zero duration
// yields an empty, non-nil buffer.
func Generate(p Params) (Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.NumSamples()
	buf := make(Buffer, n)
	rate := float64(p.SampleRate)
	for i := range buf {
		t := float64(i) / rate
		buf[i] = p.Amplitude * math.Sin(2*math.Pi*p.Frequency*t)
	}
	return buf, nil
}

// Peak returns the largest absolute sample value in the buffer
func (b Buffer) Peak() float64 {
	var peak float64
	for _, s := range b {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// Duration returns the playing time of the buffer at the given rate in seconds
func (b Buffer) Duration(sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(len(b)) / float64(sampleRate)
}
