// Package geom provides the integer pixel coordinate type shared by the
// rasterizer, the sketch builder and the canvas.
package geom

import "math"

// Point is a 2D pixel coordinate. It is a value type: derived points are new
// values and equality is plain coordinate equality.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a convenience constructor.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the point translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Hypot(dx, dy)
}

// ChebyshevDist returns the maximum per-axis distance between two points.
// Two pixels are 8-connected neighbours exactly when this is <= 1.
func (p Point) ChebyshevDist(q Point) int {
	dx := abs(p.X - q.X)
	dy := abs(p.Y - q.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
