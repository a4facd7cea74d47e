package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/josefdc/pixel-alchemy-studio/internal/raster"
)

// toolEntry pairs a button label with the primitive it arms.
type toolEntry struct {
	label string
	kind  raster.Kind
}

// Tool order mirrors the drawing workflow: dots, lines, closed shapes,
// curves, free polygons.
var toolEntries = []toolEntry{
	{"Pixel", raster.Pixel},
	{"DDA Line", raster.LineDDA},
	{"Line", raster.LineBresenham},
	{"Circle", raster.CircleBresenham},
	{"Ellipse", raster.EllipseMidpoint},
	{"Rectangle", raster.Rectangle},
	{"Triangle", raster.Triangle},
	{"Bezier", raster.BezierCubic},
	{"Polygon", raster.Polygon},
}

// Pen colors offered in the palette.
var paletteColors = []color.RGBA{
	{A: 255},                         // black
	{R: 220, A: 255},                 // red
	{G: 160, A: 255},                 // green
	{B: 220, A: 255},                 // blue
	{R: 230, G: 150, A: 255},         // orange
	{R: 120, G: 120, B: 120, A: 255}, // gray
}

// colorSwatch is a tappable square of a single color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.RGBA
	OnTapped func(color.RGBA)
}

func newColorSwatch(c color.RGBA, tapped func(color.RGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := fynecanvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := fynecanvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the tool buttons and color palette bound to a board.
func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	tools := container.NewHBox()
	for _, entry := range toolEntries {
		kind := entry.kind
		tools.Add(widget.NewButton(entry.label, func() {
			board.SelectTool(kind)
		}))
	}

	palette := container.NewHBox()
	for _, c := range paletteColors {
		palette.Add(newColorSwatch(c, board.SelectColor))
	}

	return container.NewVBox(
		container.NewHBox(widget.NewLabel("Tools:"), tools),
		container.NewHBox(widget.NewLabel("Color:"), palette),
	)
}
