// Package raster converts primitive control points into the pixel sequences
// that approximate the ideal continuous shapes. All functions are pure: they
// return the pixels to paint and never touch a surface themselves. The
// Bresenham-family algorithms use integer arithmetic only.
package raster

import (
	"fmt"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
)

// Kind identifies a drawable primitive. The set is closed: Rasterize
// dispatches over every variant and rejects anything else.
type Kind int

const (
	Pixel Kind = iota
	LineDDA
	LineBresenham
	CircleBresenham
	EllipseMidpoint
	BezierCubic
	Triangle
	Rectangle
	Polygon
)

var kindNames = map[Kind]string{
	Pixel:           "pixel",
	LineDDA:         "dda_line",
	LineBresenham:   "bresenham_line",
	CircleBresenham: "bresenham_circle",
	EllipseMidpoint: "ellipse",
	BezierCubic:     "bezier_curve",
	Triangle:        "triangle",
	Rectangle:       "rectangle",
	Polygon:         "polygon",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the defined primitives.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Arity returns the number of control points k needs before it can be
// rasterized. For Polygon this is the minimum: its point count is unbounded
// and Unbounded reports that.
func (k Kind) Arity() int {
	switch k {
	case Pixel:
		return 1
	case LineDDA, LineBresenham, CircleBresenham, EllipseMidpoint, Rectangle:
		return 2
	case Triangle, Polygon:
		return 3
	case BezierCubic:
		return 4
	}
	return 0
}

// Unbounded reports whether k accepts more control points than Arity.
func (k Kind) Unbounded() bool {
	return k == Polygon
}

// ContractError reports a Rasterize call with fewer control points than the
// primitive requires. No pixels are produced alongside it.
type ContractError struct {
	Kind Kind
	Got  int
	Want int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("raster: %s needs %d control points, got %d", e.Kind, e.Want, e.Got)
}

// Rasterize produces the pixel sequence for a primitive of the given kind.
// pts must hold at least Arity points; excess points are an error for
// fixed-arity kinds and additional vertices for Polygon.
func Rasterize(kind Kind, pts []geom.Point) ([]geom.Point, error) {
	if n := kind.Arity(); len(pts) < n {
		return nil, &ContractError{Kind: kind, Got: len(pts), Want: n}
	}
	if !kind.Unbounded() && len(pts) > kind.Arity() {
		return nil, fmt.Errorf("raster: %s takes exactly %d control points, got %d", kind, kind.Arity(), len(pts))
	}

	switch kind {
	case Pixel:
		return []geom.Point{pts[0]}, nil
	case LineDDA:
		return DDALine(pts[0], pts[1]), nil
	case LineBresenham:
		return BresenhamLine(pts[0], pts[1]), nil
	case CircleBresenham:
		return BresenhamCircle(pts[0], pts[1]), nil
	case EllipseMidpoint:
		return MidpointEllipse(pts[0], pts[1]), nil
	case BezierCubic:
		return CubicBezier(pts[0], pts[1], pts[2], pts[3], 0), nil
	case Triangle:
		return TrianglePoints(pts[0], pts[1], pts[2]), nil
	case Rectangle:
		return RectanglePoints(pts[0], pts[1]), nil
	case Polygon:
		return PolygonPoints(pts)
	}
	return nil, fmt.Errorf("raster: unknown primitive kind %d", int(kind))
}
