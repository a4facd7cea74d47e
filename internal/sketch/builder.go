// Package sketch turns a stream of pointer clicks into completed primitives.
// It is the interaction state machine between the UI and the rasterizer: a
// tool is armed, clicks accumulate until the tool's arity is satisfied, and
// the finished primitive is handed to a commit callback.
package sketch

import (
	"image/color"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
	"github.com/josefdc/pixel-alchemy-studio/internal/raster"
)

// DefaultCloseThreshold is the pixel distance within which a polygon click
// counts as a click on the first vertex and closes the polygon. Tuned for
// comfortable mouse aim, not semantically meaningful.
const DefaultCloseThreshold = 10.0

// DefaultColor is used until the first color selection.
var DefaultColor = color.RGBA{A: 255} // black

// Builder accumulates click coordinates for the armed tool and emits a
// completed primitive exactly once per shape. It is not safe for concurrent
// use; all event handlers run on the input thread.
type Builder struct {
	tool   raster.Kind
	armed  bool
	points []geom.Point
	color  color.RGBA

	// CloseThreshold is the polygon closing distance in pixels.
	CloseThreshold float64

	// OnShape is invoked once per completed primitive with the clicks in
	// click order (minus the polygon's discarded closing click) and the
	// color active at commit time.
	OnShape func(kind raster.Kind, pts []geom.Point, c color.RGBA)
}

// New returns an idle builder with no tool armed.
func New() *Builder {
	return &Builder{
		color:          DefaultColor,
		CloseThreshold: DefaultCloseThreshold,
	}
}

// SelectTool arms a drawing tool. Any partially collected points are
// discarded; a partial shape is never committed.
func (b *Builder) SelectTool(kind raster.Kind) {
	b.tool = kind
	b.armed = true
	b.points = nil
}

// SelectColor sets the color attached to shapes committed from now on.
// Changing color mid-collection affects the pending shape: the color is read
// at commit time.
func (b *Builder) SelectColor(c color.RGBA) {
	b.color = c
}

// Tool returns the armed tool, if any.
func (b *Builder) Tool() (raster.Kind, bool) {
	return b.tool, b.armed
}

// Pending returns the points collected so far, for preview rendering. The
// returned slice is a copy.
func (b *Builder) Pending() []geom.Point {
	out := make([]geom.Point, len(b.points))
	copy(out, b.points)
	return out
}

// Reset forces the builder back to idle: the accumulator empties and the
// tool is disarmed.
func (b *Builder) Reset() {
	b.armed = false
	b.points = nil
}

// Click feeds one pointer click into the machine. A click with no tool armed
// is tolerated as a no-op. When the click completes the armed tool's arity
// (or closes a polygon) the shape is emitted and the accumulator is cleared
// for the next shape of the same kind.
func (b *Builder) Click(p geom.Point) {
	if !b.armed {
		return
	}

	if b.tool == raster.Polygon {
		b.clickPolygon(p)
		return
	}

	b.points = append(b.points, p)
	if len(b.points) == b.tool.Arity() {
		b.emit()
	}
}

// clickPolygon appends vertices until a click lands within CloseThreshold of
// the first vertex. The closing click is discarded; only the collected
// vertices form the polygon. Closing is not considered before three vertices
// exist, so the emitted polygon always satisfies the rasterizer contract.
func (b *Builder) clickPolygon(p geom.Point) {
	if len(b.points) >= 3 && b.points[0].Dist(p) <= b.CloseThreshold {
		b.emit()
		return
	}
	b.points = append(b.points, p)
}

func (b *Builder) emit() {
	pts := b.points
	b.points = nil
	if b.OnShape != nil {
		b.OnShape(b.tool, pts, b.color)
	}
}
