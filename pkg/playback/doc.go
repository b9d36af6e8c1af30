// ABOUTME: Playback engine package
// ABOUTME: Loops a generated signal into a live output device through its fill callback
// Package playback delivers a generated sine signal to an audio output device.
//
// Start generates the signal, converts it to 16-bit PCM once, opens a device
// and registers the session's fill callback. The host audio thread then pulls
// PCM on its own schedule; the session's cursor wraps at the end of the
// buffer so the tone loops seamlessly until Stop.
//
// Example:
//
//	engine := playback.NewEngine(playback.Config{Backend: "malgo"})
//	session, err := engine.Start(ctx, signal.DefaultParams())
//	if errors.Is(err, playback.ErrDeviceUnavailable) {
//	    // no usable output device
//	}
//	time.Sleep(2 * time.Second)
//	err = session.Stop()
package playback
