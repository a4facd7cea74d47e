package state

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
	"github.com/josefdc/pixel-alchemy-studio/internal/raster"
)

// Board is the grow-only shape store shared across a drawing session.
// Inserts are idempotent by shape ID, so replayed or relayed network frames
// merge cleanly. Only the explicit per-owner clear removes shapes.
//
// The board is guarded for the benefit of the network goroutines; the
// rasterization core itself never touches it concurrently.
type Board struct {
	mu     sync.RWMutex
	clock  *Clock
	shapes map[string]Shape
	order  []string
}

// NewBoard returns an empty board with a fresh session clock.
func NewBoard() *Board {
	return &Board{
		clock:  NewClock(),
		shapes: make(map[string]Shape),
	}
}

// Site returns the board's session site ID, used as the local owner ID.
func (b *Board) Site() string {
	return b.clock.Site()
}

// AddLocal records a primitive committed by the local user and returns the
// full shape record to broadcast.
func (b *Board) AddLocal(kind raster.Kind, pts []geom.Point, c color.Color) Shape {
	b.mu.Lock()
	defer b.mu.Unlock()

	ts := b.clock.Tick()
	s := Shape{
		ID:      fmt.Sprintf("shape-%s-%d", b.clock.Site(), ts),
		OwnerID: b.clock.Site(),
		Kind:    kind,
		Points:  append([]geom.Point(nil), pts...),
		Color:   ColorToHex(c),
		Lamport: ts,
		Site:    b.clock.Site(),
		Time:    time.Now(),
	}
	b.insert(s)
	return s
}

// AddRemote merges a shape received from the network. It reports whether the
// shape was new; duplicates (relay echoes, snapshot overlap) are ignored.
func (b *Board) AddRemote(s Shape) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.shapes[s.ID]; exists {
		return false
	}
	b.clock.Witness(s.Lamport)
	b.insert(s)
	log.Printf("[board] merged remote shape %s (%s from %s)", s.ID, s.Kind, s.Site)
	return true
}

func (b *Board) insert(s Shape) {
	b.shapes[s.ID] = s
	b.order = append(b.order, s.ID)
}

// ClearOwner removes every shape owned by ownerID; the sentinel "all" wipes
// the whole board. It returns the number of shapes removed.
func (b *Board) ClearOwner(ownerID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	kept := b.order[:0]
	for _, id := range b.order {
		s := b.shapes[id]
		if ownerID == "all" || s.OwnerID == ownerID {
			delete(b.shapes, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	b.order = kept
	return removed
}

// Shapes returns the committed shapes in insertion order.
func (b *Board) Shapes() []Shape {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Shape, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.shapes[id])
	}
	return out
}

// Len returns the number of committed shapes.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.shapes)
}
