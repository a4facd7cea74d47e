// Package canvas holds the pixel buffer the rasterized primitives are
// written into. The rasterizer only ever sees the narrow PixelWriter
// contract; the backing image belongs to the surrounding application.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
)

// PixelWriter is the single write contract between the rasterization core
// and a drawing surface. Implementations must tolerate out-of-bounds
// coordinates (clip or ignore silently) and idempotent rewrites.
type PixelWriter interface {
	SetPixel(p geom.Point, c color.Color)
}

// Buffer is an RGBA pixel buffer with a fixed background color.
type Buffer struct {
	img *image.RGBA
	bg  color.Color
}

// NewBuffer returns a cleared buffer of the given size.
func NewBuffer(width, height int, bg color.Color) *Buffer {
	b := &Buffer{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:  bg,
	}
	b.Clear()
	return b
}

// SetPixel writes one pixel. Coordinates outside the buffer are ignored.
func (b *Buffer) SetPixel(p geom.Point, c color.Color) {
	if !image.Pt(p.X, p.Y).In(b.img.Rect) {
		return
	}
	b.img.Set(p.X, p.Y, c)
}

// At returns the color stored at p, or the background for out-of-bounds
// coordinates.
func (b *Buffer) At(p geom.Point) color.Color {
	if !image.Pt(p.X, p.Y).In(b.img.Rect) {
		return b.bg
	}
	return b.img.At(p.X, p.Y)
}

// Clear refills the buffer with its background color.
func (b *Buffer) Clear() {
	draw.Draw(b.img, b.img.Rect, image.NewUniform(b.bg), image.Point{}, draw.Src)
}

// Image exposes the backing image for display and export. Callers must not
// mutate it behind the buffer's back.
func (b *Buffer) Image() image.Image {
	return b.img
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.img.Rect.Dx(), b.img.Rect.Dy()
}

// Paint writes a rasterized point sequence through the PixelWriter contract.
func Paint(w PixelWriter, pts []geom.Point, c color.Color) {
	for _, p := range pts {
		w.SetPixel(p, c)
	}
}
