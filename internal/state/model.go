// Package state holds the committed drawing: immutable shape records, the
// session's site identity and the merge rules that keep several boards on a
// LAN converging to the same picture.
package state

import (
	"fmt"
	"image/color"
	"time"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
	"github.com/josefdc/pixel-alchemy-studio/internal/raster"
)

// Shape is a completed primitive as committed by the sketch builder. Once
// constructed it is never mutated; re-rasterizing a board replays these
// records in insertion order.
type Shape struct {
	ID      string       `json:"id"`
	OwnerID string       `json:"owner_id"`
	Kind    raster.Kind  `json:"kind"`
	Points  []geom.Point `json:"points"`
	Color   string       `json:"color"` // #rrggbb
	Lamport uint64       `json:"lamport"`
	Site    string       `json:"site"`
	Time    time.Time    `json:"time"`
}

// ColorToHex encodes a color as #rrggbb for the wire and the shape record.
// Alpha is dropped; the board draws opaque pixels only.
func ColorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// HexToColor decodes a #rrggbb string. Malformed input falls back to black,
// matching the board's default pen.
func HexToColor(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
