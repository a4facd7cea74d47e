package raster

import "github.com/josefdc/pixel-alchemy-studio/internal/geom"

// TrianglePoints rasterizes the outline of the triangle p0-p1-p2 as three
// Bresenham edges.
func TrianglePoints(p0, p1, p2 geom.Point) []geom.Point {
	return edgeLoop([]geom.Point{p0, p1, p2})
}

// RectanglePoints rasterizes the outline of the axis-aligned rectangle whose
// opposite corners are p0 and p1. The two remaining vertices are implied.
func RectanglePoints(p0, p1 geom.Point) []geom.Point {
	return edgeLoop([]geom.Point{
		p0,
		geom.Pt(p1.X, p0.Y),
		p1,
		geom.Pt(p0.X, p1.Y),
	})
}

// PolygonPoints rasterizes the closed outline through the given vertices in
// order, joining the last vertex back to the first. At least three vertices
// are required.
func PolygonPoints(vertices []geom.Point) ([]geom.Point, error) {
	if len(vertices) < 3 {
		return nil, &ContractError{Kind: Polygon, Got: len(vertices), Want: 3}
	}
	return edgeLoop(vertices), nil
}

// edgeLoop draws a Bresenham edge between consecutive vertices and closes the
// loop from the last back to the first.
func edgeLoop(vertices []geom.Point) []geom.Point {
	var pts []geom.Point
	for i := range vertices {
		next := vertices[(i+1)%len(vertices)]
		pts = append(pts, BresenhamLine(vertices[i], next)...)
	}
	return pts
}
