// ABOUTME: Audio type definitions
// ABOUTME: Defines the PCM stream format and float to 16-bit sample conversion
package audio

import (
	"encoding/binary"
	"math"
)

const (
	// 16-bit output range, symmetric so +1.0 and -1.0 map to equal magnitudes
	MaxInt16Sample = 32767
	MinInt16Sample = -32767

	// BytesPerSample is the width of one S16 sample on the wire
	BytesPerSample = 2

	// BitDepth16 is the only bit depth delivered to output devices
	BitDepth16 = 16
)

// Format describes a PCM stream handed to an output device
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// MonoS16 returns a mono, 16-bit signed format at the given rate
func MonoS16(sampleRate int) Format {
	return Format{
		SampleRate: sampleRate,
		Channels:   1,
		BitDepth:   BitDepth16,
	}
}

// FrameSize returns the number of bytes per frame (all channels)
func (f Format) FrameSize() int {
	return f.Channels * (f.BitDepth / 8)
}

// FloatToInt16 converts a sample in [-1, 1] to 16-bit PCM.
// Values are rounded to nearest and clamped to [MinInt16Sample, MaxInt16Sample].
func FloatToInt16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.Round(v * MaxInt16Sample)
	if scaled > MaxInt16Sample {
		return MaxInt16Sample
	}
	if scaled < MinInt16Sample {
		return MinInt16Sample
	}
	return int16(scaled)
}

// EncodeS16LE packs samples into dst as little-endian 16-bit PCM.
// Only whole samples that fit in dst are written; returns bytes written.
func EncodeS16LE(dst []byte, samples []float64) int {
	n := len(dst) / BytesPerSample
	if n > len(samples) {
		n = len(samples)
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(dst[i*BytesPerSample:], uint16(FloatToInt16(samples[i])))
	}
	return n * BytesPerSample
}
