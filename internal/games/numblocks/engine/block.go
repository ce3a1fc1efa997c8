package engine

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/numblocks/internal/core"
)

// Block is one numbered tile on the surface.
// Pos.X is the horizontal centre and Pos.Y the bottom edge, in surface units.
type Block struct {
	ID    uuid.UUID
	Value int
	Width int
	Pos   core.Vec
}

// Height returns the number of cell rows; it is always derived from
// Value and Width.
func (b Block) Height() int {
	return HeightFor(b.Value, b.Width)
}

// CellSize returns the rendered unit-cell edge for this block.
func (b Block) CellSize() float64 {
	return CellSize(b.Value)
}

// PixelWidth returns the rendered width in surface units.
func (b Block) PixelWidth() float64 {
	return float64(b.Width) * b.CellSize()
}

// Footprint returns the rendered rectangle of the block, bottom-centred on Pos.
func (b Block) Footprint() core.Box {
	cs := b.CellSize()
	w := float64(b.Width) * cs
	h := float64(b.Height()) * cs
	return core.Box{
		Min: core.V(b.Pos.X-w/2, b.Pos.Y-h),
		Max: core.V(b.Pos.X+w/2, b.Pos.Y),
	}
}

// DrawOrder returns blocks in paint order: board order, with terminal
// (value 100) blocks lifted above the rest. The last element is topmost.
func DrawOrder(blocks []Block) []Block {
	out := make([]Block, 0, len(blocks))
	var top []Block
	for _, b := range blocks {
		if b.Value >= 100 {
			top = append(top, b)
			continue
		}
		out = append(out, b)
	}
	return append(out, top...)
}
