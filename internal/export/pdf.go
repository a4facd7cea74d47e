// Package export writes the committed drawing to external formats.
package export

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
	"github.com/josefdc/pixel-alchemy-studio/internal/raster"
	"github.com/josefdc/pixel-alchemy-studio/internal/state"
)

// pxPerMM maps canvas pixels to millimeters on the A4 page.
const pxPerMM = 3.0

// PDF writes the shapes as vector geometry onto an A4 page at path. Shapes
// are drawn in insertion order with their committed colors.
func PDF(path string, shapes []state.Shape) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetLineWidth(0.5)

	for _, s := range shapes {
		c := state.HexToColor(s.Color)
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		if err := drawShape(pdf, s); err != nil {
			return fmt.Errorf("export shape %s: %w", s.ID, err)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

func drawShape(pdf *gofpdf.Fpdf, s state.Shape) error {
	if len(s.Points) < s.Kind.Arity() {
		return &raster.ContractError{Kind: s.Kind, Got: len(s.Points), Want: s.Kind.Arity()}
	}
	p := s.Points

	switch s.Kind {
	case raster.Pixel:
		x, y := mm(p[0])
		pdf.Rect(x, y, 1/pxPerMM, 1/pxPerMM, "F")
	case raster.LineDDA, raster.LineBresenham:
		x0, y0 := mm(p[0])
		x1, y1 := mm(p[1])
		pdf.Line(x0, y0, x1, y1)
	case raster.CircleBresenham:
		x, y := mm(p[0])
		r := math.Round(p[0].Dist(p[1])) / pxPerMM
		pdf.Circle(x, y, r, "D")
	case raster.EllipseMidpoint:
		x, y := mm(p[0])
		rx := math.Abs(float64(p[1].X-p[0].X)) / pxPerMM
		ry := math.Abs(float64(p[1].Y-p[0].Y)) / pxPerMM
		pdf.Ellipse(x, y, rx, ry, 0, "D")
	case raster.BezierCubic:
		x0, y0 := mm(p[0])
		cx0, cy0 := mm(p[1])
		cx1, cy1 := mm(p[2])
		x1, y1 := mm(p[3])
		pdf.CurveBezierCubic(x0, y0, cx0, cy0, cx1, cy1, x1, y1, "D")
	case raster.Rectangle:
		minX := math.Min(float64(p[0].X), float64(p[1].X)) / pxPerMM
		minY := math.Min(float64(p[0].Y), float64(p[1].Y)) / pxPerMM
		w := math.Abs(float64(p[1].X-p[0].X)) / pxPerMM
		h := math.Abs(float64(p[1].Y-p[0].Y)) / pxPerMM
		pdf.Rect(minX, minY, w, h, "D")
	case raster.Triangle, raster.Polygon:
		vertices := make([]gofpdf.PointType, len(p))
		for i, pt := range p {
			x, y := mm(pt)
			vertices[i] = gofpdf.PointType{X: x, Y: y}
		}
		pdf.Polygon(vertices, "D")
	default:
		return fmt.Errorf("unknown primitive kind %d", int(s.Kind))
	}
	return nil
}

func mm(p geom.Point) (x, y float64) {
	return float64(p.X) / pxPerMM, float64(p.Y) / pxPerMM
}
