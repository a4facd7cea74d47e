package raster

import (
	"math"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
)

// DDALine rasterizes the segment p0-p1 with the digital differential
// analyzer: it steps one unit along the dominant axis and accumulates a
// fractional increment on the other, rounding each sample to the nearest
// pixel. The result always holds max(|dx|,|dy|)+1 points; a zero-length
// segment yields just p0.
func DDALine(p0, p1 geom.Point) []geom.Point {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		return []geom.Point{p0}
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	pts := make([]geom.Point, 0, steps+1)
	x := float64(p0.X)
	y := float64(p0.Y)
	for i := 0; i <= steps; i++ {
		pts = append(pts, geom.Pt(int(math.Round(x)), int(math.Round(y))))
		x += xInc
		y += yInc
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
