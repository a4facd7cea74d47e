package ui

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/josefdc/pixel-alchemy-studio/internal/canvas"
	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
	"github.com/josefdc/pixel-alchemy-studio/internal/raster"
	"github.com/josefdc/pixel-alchemy-studio/internal/sketch"
	"github.com/josefdc/pixel-alchemy-studio/internal/state"
)

// Canvas dimensions. The buffer is fixed-size; the window scrolls or letters
// around it.
const (
	CanvasWidth  = 960
	CanvasHeight = 720
)

var canvasBackground = color.White

// BoardWidget is the interactive drawing surface: it owns the pixel buffer,
// feeds taps into the sketch builder and replays the shape store into the
// buffer. Completed shapes surface through OnShape for network broadcast.
type BoardWidget struct {
	widget.BaseWidget

	mu      sync.Mutex
	buf     *canvas.Buffer
	board   *state.Board
	builder *sketch.Builder

	// OnShape fires for every locally committed shape, after it has been
	// stored and painted.
	OnShape func(s state.Shape)
	// OnClear fires when the local user clears their own shapes.
	OnClear func(ownerID string)

	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ fyne.SecondaryTappable = (*BoardWidget)(nil)

// NewBoardWidget returns a board with an empty buffer and an idle builder.
func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{
		buf:       canvas.NewBuffer(CanvasWidth, CanvasHeight, canvasBackground),
		board:     state.NewBoard(),
		builder:   sketch.New(),
		statusBar: widget.NewLabel("Pick a tool to start drawing"),
	}
	b.builder.OnShape = b.commit
	b.ExtendBaseWidget(b)
	return b
}

// Board exposes the shape store for snapshots and export.
func (b *BoardWidget) Board() *state.Board {
	return b.board
}

// StatusBar returns the label the board reports progress on.
func (b *BoardWidget) StatusBar() *widget.Label {
	return b.statusBar
}

// SetStatus updates the status bar from any goroutine.
func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

// SelectTool arms a drawing tool, discarding any pending points.
func (b *BoardWidget) SelectTool(kind raster.Kind) {
	b.mu.Lock()
	b.builder.SelectTool(kind)
	b.mu.Unlock()
	b.SetStatus(fmt.Sprintf("Tool: %s", kind))
	b.Refresh()
}

// SelectColor sets the pen color for shapes committed from now on.
func (b *BoardWidget) SelectColor(c color.RGBA) {
	b.mu.Lock()
	b.builder.SelectColor(c)
	b.mu.Unlock()
}

// Tapped feeds a primary click into the sketch builder.
func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	p := geom.Pt(int(e.Position.X), int(e.Position.Y))

	b.mu.Lock()
	b.builder.Click(p)
	tool, armed := b.builder.Tool()
	pending := len(b.builder.Pending())
	b.mu.Unlock()

	if armed {
		b.SetStatus(collectStatus(tool, pending))
	}
	b.Refresh()
}

// TappedSecondary abandons the points collected so far but keeps the tool
// armed.
func (b *BoardWidget) TappedSecondary(*fyne.PointEvent) {
	b.mu.Lock()
	tool, armed := b.builder.Tool()
	if armed {
		b.builder.SelectTool(tool)
	}
	b.mu.Unlock()
	if armed {
		b.SetStatus(fmt.Sprintf("Tool: %s (pending points discarded)", tool))
	}
	b.Refresh()
}

func collectStatus(tool raster.Kind, pending int) string {
	if pending == 0 {
		return fmt.Sprintf("Tool: %s", tool)
	}
	if tool.Unbounded() {
		return fmt.Sprintf("%s: %d points (click near the first point to close)", tool, pending)
	}
	return fmt.Sprintf("%s: %d/%d points", tool, pending, tool.Arity())
}

// commit is the builder's OnShape callback. It runs on the input thread with
// b.mu held by the caller of builder.Click.
func (b *BoardWidget) commit(kind raster.Kind, pts []geom.Point, c color.RGBA) {
	s := b.board.AddLocal(kind, pts, c)
	b.paint(s)
	log.Printf("[board] committed %s with %d points", kind, len(pts))

	if b.OnShape != nil {
		b.OnShape(s)
	}
}

// paint rasterizes one stored shape into the buffer. The shape came through
// the builder or the store, so the arity contract holds; a failure here is a
// programming error worth logging, never a crash.
func (b *BoardWidget) paint(s state.Shape) {
	pts, err := raster.Rasterize(s.Kind, s.Points)
	if err != nil {
		log.Printf("[board] rasterize %s: %v", s.ID, err)
		return
	}
	canvas.Paint(b.buf, pts, state.HexToColor(s.Color))
}

// repaintAll clears the buffer and replays the whole store, used after a
// clear removed shapes that were already painted.
func (b *BoardWidget) repaintAll() {
	b.buf.Clear()
	for _, s := range b.board.Shapes() {
		b.paint(s)
	}
}

// AddRemoteShape merges and paints a shape received from the network.
func (b *BoardWidget) AddRemoteShape(s state.Shape) {
	b.mu.Lock()
	if b.board.AddRemote(s) {
		b.paint(s)
	}
	b.mu.Unlock()
	fyne.Do(b.Refresh)
}

// ApplySnapshot merges a full board snapshot received on connect.
func (b *BoardWidget) ApplySnapshot(shapes []state.Shape) {
	b.mu.Lock()
	for _, s := range shapes {
		if b.board.AddRemote(s) {
			b.paint(s)
		}
	}
	b.mu.Unlock()
	fyne.Do(b.Refresh)
	b.SetStatus(fmt.Sprintf("Joined session: %d shapes", len(shapes)))
}

// ClearRemote removes a remote owner's shapes and repaints.
func (b *BoardWidget) ClearRemote(ownerID string) {
	b.mu.Lock()
	n := b.board.ClearOwner(ownerID)
	b.repaintAll()
	b.mu.Unlock()
	if n > 0 {
		fyne.Do(b.Refresh)
	}
}

// ClearLocal removes the local user's shapes, resets the pending shape and
// notifies OnClear so the operation propagates to the session.
func (b *BoardWidget) ClearLocal() {
	owner := b.board.Site()

	b.mu.Lock()
	b.board.ClearOwner(owner)
	b.builder.Reset()
	b.repaintAll()
	b.mu.Unlock()

	b.SetStatus("Cleared")
	b.Refresh()
	if b.OnClear != nil {
		b.OnClear(owner)
	}
}

// CreateRenderer renders the pixel buffer plus markers for pending clicks.
func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	img := fynecanvas.NewRasterFromImage(b.buf.Image())
	img.ScaleMode = fynecanvas.ImageScalePixels
	return &boardRenderer{board: b, img: img}
}

type boardRenderer struct {
	board *BoardWidget
	img   *fynecanvas.Raster
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	r.board.mu.Lock()
	pending := r.board.builder.Pending()
	r.board.mu.Unlock()

	objects := []fyne.CanvasObject{r.img}
	for _, p := range pending {
		marker := fynecanvas.NewCircle(color.NRGBA{R: 220, G: 40, B: 40, A: 255})
		marker.Resize(fyne.NewSize(6, 6))
		marker.Move(fyne.NewPos(float32(p.X)-3, float32(p.Y)-3))
		objects = append(objects, marker)
	}
	return objects
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CanvasWidth, CanvasHeight)
}

func (r *boardRenderer) Refresh() {
	r.img.Refresh()
	fynecanvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
