package raster

import (
	"math"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
)

// BresenhamLine rasterizes the segment p0-p1 with Bresenham's integer error
// accumulator. Sign normalization handles all eight octants in one loop, and
// the produced pixel set is the same regardless of endpoint order (the
// traversal order follows p0->p1). Both endpoints are always included;
// p0 == p1 yields the single pixel.
func BresenhamLine(p0, p1 geom.Point) []geom.Point {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)

	sx := 1
	if p0.X > p1.X {
		sx = -1
	}
	sy := 1
	if p0.Y > p1.Y {
		sy = -1
	}

	err := dx - dy
	x, y := p0.X, p0.Y

	pts := make([]geom.Point, 0, dx+dy+1)
	for {
		pts = append(pts, geom.Pt(x, y))
		if x == p1.X && y == p1.Y {
			return pts
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// BresenhamCircle rasterizes the circle centered at center whose radius is
// the rounded distance to edge. One octant is generated with the midpoint
// decision variable and mirrored into the remaining seven; pixels may repeat
// where octants meet on the axes. Radius zero yields the center pixel.
func BresenhamCircle(center, edge geom.Point) []geom.Point {
	r := int(math.Round(center.Dist(edge)))
	if r == 0 {
		return []geom.Point{center}
	}

	x := 0
	y := r
	p := 1 - r

	// 8 mirrored pixels per step, about r/sqrt(2) steps per octant.
	pts := make([]geom.Point, 0, 8*(r+1))
	pts = appendCirclePoints(pts, center, x, y)
	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
		pts = appendCirclePoints(pts, center, x, y)
	}
	return pts
}

// appendCirclePoints mirrors the octant sample (x, y) through the circle's
// 8-way symmetry around c.
func appendCirclePoints(pts []geom.Point, c geom.Point, x, y int) []geom.Point {
	return append(pts,
		geom.Pt(c.X+x, c.Y+y),
		geom.Pt(c.X-x, c.Y+y),
		geom.Pt(c.X+x, c.Y-y),
		geom.Pt(c.X-x, c.Y-y),
		geom.Pt(c.X+y, c.Y+x),
		geom.Pt(c.X-y, c.Y+x),
		geom.Pt(c.X+y, c.Y-x),
		geom.Pt(c.X-y, c.Y-x),
	)
}
