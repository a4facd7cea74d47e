package raster

import (
	"math"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
)

// Bounds for the adaptive segment count. The lower bound keeps tiny curves
// smooth, the upper bound caps the work for degenerate far-apart handles.
const (
	minBezierSegments = 8
	maxBezierSegments = 4096
)

// CubicBezier tessellates the cubic Bézier curve with endpoints p0, p3 and
// control handles p1, p2 into straight chords and rasterizes each chord with
// BresenhamLine, so the output is a connected pixel sequence with no gaps.
//
// segments selects the chord count; values <= 0 pick an adaptive default
// proportional to the control polygon length |p0p1|+|p1p2|+|p2p3|, which
// bounds the curve's arc length and keeps consecutive curve samples within a
// pixel of each other.
func CubicBezier(p0, p1, p2, p3 geom.Point, segments int) []geom.Point {
	if segments <= 0 {
		segments = adaptiveSegments(p0, p1, p2, p3)
	}

	prev := p0
	pts := []geom.Point{p0}
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		next := evalCubic(p0, p1, p2, p3, t)
		if next == prev {
			continue
		}
		// Chord pixels, skipping the shared start pixel.
		pts = append(pts, BresenhamLine(prev, next)[1:]...)
		prev = next
	}
	return pts
}

// evalCubic evaluates the Bernstein form of the curve at t and rounds to the
// nearest pixel.
func evalCubic(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t

	x := b0*float64(p0.X) + b1*float64(p1.X) + b2*float64(p2.X) + b3*float64(p3.X)
	y := b0*float64(p0.Y) + b1*float64(p1.Y) + b2*float64(p2.Y) + b3*float64(p3.Y)
	return geom.Pt(int(math.Round(x)), int(math.Round(y)))
}

// adaptiveSegments derives a chord count from the control polygon length,
// which is an upper bound on the curve's arc length.
func adaptiveSegments(p0, p1, p2, p3 geom.Point) int {
	perimeter := p0.Dist(p1) + p1.Dist(p2) + p2.Dist(p3)
	n := int(math.Ceil(perimeter))
	if n < minBezierSegments {
		return minBezierSegments
	}
	if n > maxBezierSegments {
		return maxBezierSegments
	}
	return n
}
