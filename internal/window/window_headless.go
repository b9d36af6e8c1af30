//go:build headless

// ABOUTME: Headless stand-in for the waveform window
// ABOUTME: Reports that no display exists instead of opening one
package window

import (
	"github.com/Resonate-Protocol/sinewave-go/pkg/render"
)

// Show always fails in headless builds
func Show(points []render.Point, opts Options) error {
	return ErrNoDisplay
}
