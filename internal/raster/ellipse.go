package raster

import "github.com/josefdc/pixel-alchemy-studio/internal/geom"

// MidpointEllipse rasterizes the axis-aligned ellipse centered at center with
// semi-axes rx = |edge.X-center.X| and ry = |edge.Y-center.Y| using the
// two-region midpoint algorithm. Region 1 walks x while the tangent slope
// magnitude stays below 1, region 2 walks y after the slope crosses -1; every
// sample is mirrored into the four quadrants.
//
// A zero semi-axis degenerates the ellipse to a straight line along the other
// axis; both zero yields the single center pixel.
func MidpointEllipse(center, edge geom.Point) []geom.Point {
	rx := abs(edge.X - center.X)
	ry := abs(edge.Y - center.Y)

	switch {
	case rx == 0 && ry == 0:
		return []geom.Point{center}
	case rx == 0:
		return BresenhamLine(geom.Pt(center.X, center.Y-ry), geom.Pt(center.X, center.Y+ry))
	case ry == 0:
		return BresenhamLine(geom.Pt(center.X-rx, center.Y), geom.Pt(center.X+rx, center.Y))
	}

	rx2 := rx * rx
	ry2 := ry * ry

	x := 0
	y := ry

	pts := make([]geom.Point, 0, 4*(rx+ry))
	pts = appendEllipsePoints(pts, center, x, y)

	// Region 1: slope magnitude < 1.
	p1 := float64(ry2) - float64(rx2*ry) + 0.25*float64(rx2)
	for ry2*x < rx2*y {
		x++
		if p1 < 0 {
			p1 += float64(2*ry2*x + ry2)
		} else {
			y--
			p1 += float64(2*ry2*x - 2*rx2*y + ry2)
		}
		pts = appendEllipsePoints(pts, center, x, y)
	}

	// Region 2: slope magnitude > 1, step y down to the x axis.
	fx := float64(x) + 0.5
	fy := float64(y) - 1
	p2 := float64(ry2)*fx*fx + float64(rx2)*fy*fy - float64(rx2*ry2)
	for y > 0 {
		y--
		if p2 > 0 {
			p2 += float64(-2*rx2*y + rx2)
		} else {
			x++
			p2 += float64(2*ry2*x - 2*rx2*y + rx2)
		}
		pts = appendEllipsePoints(pts, center, x, y)
	}
	return pts
}

// appendEllipsePoints mirrors the first-quadrant sample (x, y) into the four
// quadrants around c.
func appendEllipsePoints(pts []geom.Point, c geom.Point, x, y int) []geom.Point {
	return append(pts,
		geom.Pt(c.X+x, c.Y+y),
		geom.Pt(c.X-x, c.Y+y),
		geom.Pt(c.X+x, c.Y-y),
		geom.Pt(c.X-x, c.Y-y),
	)
}
