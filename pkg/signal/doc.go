// ABOUTME: Sine signal generation package
// ABOUTME: Builds deterministic mono sample buffers from a small parameter set
// Package signal synthesises mono sine-wave sample buffers.
//
// Every sample is computed from its own index (t = i / SampleRate), never from
// an accumulated phase, so two calls with the same Params return identical
// buffers regardless of how the result is consumed later.
//
// Example:
//
//	buf, err := signal.Generate(signal.Params{
//	    SampleRate: 44100,
//	    Frequency:  440,
//	    Duration:   1.0,
//	    Amplitude:  1.0,
//	})
package signal
