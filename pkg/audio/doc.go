// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format and float to 16-bit PCM conversion
// Package audio provides the PCM format description shared by the generator,
// the playback engine and the output backends.
//
// Generated signals are float64 samples nominally in [-1, 1]. Output devices
// receive mono, 16-bit signed little-endian PCM:
//
//	format := audio.MonoS16(44100)
//	pcm := make([]byte, len(samples)*audio.BytesPerSample)
//	audio.EncodeS16LE(pcm, samples)
package audio
