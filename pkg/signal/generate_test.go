// ABOUTME: Tests for sine generation
// ABOUTME: Covers buffer length, amplitude bounds, determinism and edge cases
package signal

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func TestGenerateLength(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   int
	}{
		{"one second CD rate", Params{44100, 440, 1.0, 1.0}, 44100},
		{"two seconds default", DefaultParams(), 88200},
		{"one millisecond", Params{8000, 1000, 0.001, 1.0}, 8},
		{"rounds up", Params{1000, 10, 0.0026, 1.0}, 3},  // 2.6 -> 3
		{"rounds down", Params{1000, 10, 0.0024, 1.0}, 2}, // 2.4 -> 2
		{"zero duration", Params{44100, 440, 0, 1.0}, 0},
		{"sub-sample duration", Params{100, 10, 0.004, 1.0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Generate(tt.params)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(buf) != tt.want {
				t.Errorf("expected %d samples, got %d", tt.want, len(buf))
			}
			if len(buf) != tt.params.NumSamples() {
				t.Errorf("NumSamples() = %d disagrees with buffer length %d", tt.params.NumSamples(), len(buf))
			}
		})
	}
}

func TestGenerateAmplitudeBounds(t *testing.T) {
	amplitudes := []float64{1.0, 0.5, 0.1, -0.75, 0}

	for _, amp := range amplitudes {
		buf, err := Generate(Params{SampleRate: 48000, Frequency: 997, Duration: 0.25, Amplitude: amp})
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		limit := math.Abs(amp) + tolerance
		for i, s := range buf {
			if math.Abs(s) > limit {
				t.Fatalf("amplitude %v: sample %d = %v outside bound", amp, i, s)
			}
		}
		if peak := buf.Peak(); peak > limit {
			t.Errorf("amplitude %v: peak %v outside bound", amp, peak)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := Params{SampleRate: 44100, Frequency: 123.456, Duration: 0.5, Amplitude: 0.8}

	a, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	b, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerateMatchesIndexFormula(t *testing.T) {
	p := Params{SampleRate: 22050, Frequency: 311.1, Duration: 0.1, Amplitude: 0.3}
	buf, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	// Spot-check far into the buffer where incremental phase would drift
	for _, i := range []int{0, 1, 1000, len(buf) - 1} {
		want := p.Amplitude * math.Sin(2*math.Pi*p.Frequency*(float64(i)/float64(p.SampleRate)))
		if buf[i] != want {
			t.Errorf("sample %d: expected %v, got %v", i, want, buf[i])
		}
	}
}

func TestGenerateZeroDuration(t *testing.T) {
	buf, err := Generate(Params{SampleRate: 44100, Frequency: 440, Duration: 0, Amplitude: 1})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if buf == nil {
		t.Error("expected empty non-nil buffer")
	}
	if len(buf) != 0 {
		t.Errorf("expected empty buffer, got %d samples", len(buf))
	}
}

func TestGenerateA440Scenario(t *testing.T) {
	buf, err := Generate(Params{SampleRate: 44100, Frequency: 440, Duration: 1.0, Amplitude: 1.0})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(buf) != 44100 {
		t.Fatalf("expected 44100 samples, got %d", len(buf))
	}
	if math.Abs(buf[0]) > tolerance {
		t.Errorf("sample 0: expected 0, got %v", buf[0])
	}

	// One period is 44100/440 ~= 100.2 samples, so index 100 sits just
	// before the end of the first cycle, close to a zero crossing.
	if v := buf[44100/440]; math.Abs(v) > 0.02 {
		t.Errorf("sample %d: expected near zero, got %v", 44100/440, v)
	}

	// A quarter period in is the positive peak
	if v := buf[25]; v < 0.99 {
		t.Errorf("sample 25: expected near peak, got %v", v)
	}
}

func TestGenerateShortScenario(t *testing.T) {
	buf, err := Generate(Params{SampleRate: 8000, Frequency: 1000, Duration: 0.001, Amplitude: 1.0})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(buf) != 8 {
		t.Fatalf("expected 8 samples, got %d", len(buf))
	}

	// Exactly one cycle, eight samples per period
	for i, s := range buf {
		want := math.Sin(2 * math.Pi * float64(i) / 8)
		if math.Abs(s-want) > tolerance {
			t.Errorf("sample %d: expected %v, got %v", i, want, s)
		}
	}
}

func TestGenerateInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"zero sample rate", Params{0, 440, 1, 1}},
		{"negative sample rate", Params{-44100, 440, 1, 1}},
		{"zero frequency", Params{44100, 0, 1, 1}},
		{"negative frequency", Params{44100, -440, 1, 1}},
		{"nan frequency", Params{44100, math.NaN(), 1, 1}},
		{"infinite frequency", Params{44100, math.Inf(1), 1, 1}},
		{"negative duration", Params{44100, 440, -1, 1}},
		{"nan duration", Params{44100, 440, math.NaN(), 1}},
		{"infinite duration", Params{44100, 440, math.Inf(1), 1}},
		{"nan amplitude", Params{44100, 440, 1, math.NaN()}},
		{"infinite amplitude", Params{44100, 440, 1, math.Inf(-1)}},
		{"too many samples", Params{192000, 440, 1e6, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Generate(tt.params)
			if !errors.Is(err, ErrInvalidParameters) {
				t.Fatalf("expected ErrInvalidParameters, got %v", err)
			}
			if buf != nil {
				t.Errorf("expected nil buffer on error, got %d samples", len(buf))
			}
		})
	}
}

func TestBufferDuration(t *testing.T) {
	buf := make(Buffer, 22050)
	if d := buf.Duration(44100); d != 0.5 {
		t.Errorf("expected 0.5s, got %v", d)
	}
	if d := buf.Duration(0); d != 0 {
		t.Errorf("expected 0 for invalid rate, got %v", d)
	}
}
