// ABOUTME: Tests for audio types
// ABOUTME: Tests float to 16-bit conversion and PCM packing
package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestFloatToInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int16
	}{
		{"zero", 0, 0},
		{"full positive", 1.0, 32767},
		{"full negative", -1.0, -32767},
		{"half", 0.5, 16384}, // 16383.5 rounds away from zero
		{"negative half", -0.5, -16384},
		{"small rounds down", 0.00001, 0},
		{"small rounds up", 0.00002, 1},
		{"clamp positive", 1.5, 32767},
		{"clamp negative", -2.0, -32767},
		{"positive infinity", math.Inf(1), 32767},
		{"negative infinity", math.Inf(-1), -32767},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FloatToInt16(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestEncodeS16LE(t *testing.T) {
	samples := []float64{0, 1, -1, 0.25}
	dst := make([]byte, len(samples)*BytesPerSample)

	n := EncodeS16LE(dst, samples)
	if n != len(dst) {
		t.Fatalf("expected %d bytes written, got %d", len(dst), n)
	}

	for i, s := range samples {
		got := int16(binary.LittleEndian.Uint16(dst[i*2:]))
		if want := FloatToInt16(s); got != want {
			t.Errorf("sample %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestEncodeS16LEShortDestination(t *testing.T) {
	samples := []float64{1, 1, 1}
	dst := make([]byte, 3) // room for one whole sample only

	n := EncodeS16LE(dst, samples)
	if n != 2 {
		t.Fatalf("expected 2 bytes written, got %d", n)
	}
	if dst[2] != 0 {
		t.Errorf("trailing byte should be untouched, got %d", dst[2])
	}
}

func TestEncodeS16LEShortSamples(t *testing.T) {
	dst := make([]byte, 8)
	n := EncodeS16LE(dst, []float64{-1})
	if n != 2 {
		t.Fatalf("expected 2 bytes written, got %d", n)
	}
}

func TestMonoS16(t *testing.T) {
	f := MonoS16(8000)
	if f.SampleRate != 8000 || f.Channels != 1 || f.BitDepth != 16 {
		t.Errorf("unexpected format %+v", f)
	}
	if f.FrameSize() != BytesPerSample {
		t.Errorf("expected frame size %d, got %d", BytesPerSample, f.FrameSize())
	}
}
