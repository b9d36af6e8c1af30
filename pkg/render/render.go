// ABOUTME: Waveform point mapping for on-screen drawing
// ABOUTME: Maps a sample buffer to screen coordinates plus the axis segments
package render

import (
	"image/color"

	"github.com/Resonate-Protocol/sinewave-go/pkg/signal"
)

const (
	ScreenWidth  = 1600
	ScreenHeight = 900

	// AxisMargin is the inset of the axes from the window edges
	AxisMargin = 100
)

var (
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Point is a position in screen space, origin top-left
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points
type Segment struct {
	From, To Point
}

// Points maps sample i of N to (i*width/N, height/2 - sample*height/4).
// An amplitude of 1 therefore spans the middle half of the screen.
func Points(buf signal.Buffer, width, height int) []Point {
	n := len(buf)
	if n == 0 {
		return nil
	}

	w, h := float64(width), float64(height)
	points := make([]Point, n)
	for i, s := range buf {
		points[i] = Point{
			X: float64(i) * w / float64(n),
			Y: h/2 - s*(h/4),
		}
	}
	return points
}

// Polyline joins consecutive points into segments
func Polyline(points []Point) []Segment {
	if len(points) < 2 {
		return nil
	}
	segments := make([]Segment, len(points)-1)
	for i := range segments {
		segments[i] = Segment{From: points[i], To: points[i+1]}
	}
	return segments
}

// Axes returns the horizontal time axis through the vertical centre and
// the vertical amplitude axis, both inset by AxisMargin.
func Axes(width, height int) []Segment {
	w, h := float64(width), float64(height)
	m := float64(AxisMargin)
	return []Segment{
		{From: Point{0, h / 2}, To: Point{w - m, h / 2}},
		{From: Point{m, m}, To: Point{m, h - m}},
	}
}
