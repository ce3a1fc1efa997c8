package numblocks

import (
	"math"

	"github.com/vovakirdan/numblocks/internal/core"
)

// Viewport maps the terminal cells of the play area onto the continuous
// surface the engine works in.
type Viewport struct {
	Rect     core.Rect // Play area in terminal cells
	ColUnits float64   // Surface units per column
	RowUnits float64   // Surface units per row
}

// NewViewport lays out the play area of a screen, leaving hud rows at the
// top and footer rows at the bottom.
func NewViewport(screenW, screenH, hud, footer int, colUnits, rowUnits float64) Viewport {
	h := max(0, screenH-hud-footer)
	return Viewport{
		Rect:     core.NewRect(0, hud, max(0, screenW), h),
		ColUnits: colUnits,
		RowUnits: rowUnits,
	}
}

// Measured reports whether the play area has a size.
func (v Viewport) Measured() bool {
	return !v.Rect.Empty() && v.ColUnits > 0 && v.RowUnits > 0
}

// Size returns the surface extent in units.
func (v Viewport) Size() (w, h float64) {
	return float64(v.Rect.W) * v.ColUnits, float64(v.Rect.H) * v.RowUnits
}

// ToSurface converts a terminal cell to the surface point at its centre.
// inside is false for cells outside the play area; the point is still
// returned so drags may leave and re-enter.
func (v Viewport) ToSurface(col, row int) (p core.Vec, inside bool) {
	p = core.V(
		(float64(col-v.Rect.X)+0.5)*v.ColUnits,
		(float64(row-v.Rect.Y)+0.5)*v.RowUnits,
	)
	return p, v.Rect.Contains(col, row)
}

// ToCell converts a surface point to the terminal cell containing it.
func (v Viewport) ToCell(p core.Vec) (col, row int) {
	return v.Rect.X + int(math.Floor(p.X/v.ColUnits)), v.Rect.Y + int(math.Floor(p.Y/v.RowUnits))
}

// CellSpan returns the terminal cells covered by a surface box: every cell
// whose centre lies inside it.
func (v Viewport) CellSpan(b core.Box) core.Rect {
	c0 := int(math.Ceil(b.Min.X/v.ColUnits - 0.5))
	c1 := int(math.Floor(b.Max.X/v.ColUnits - 0.5))
	r0 := int(math.Ceil(b.Min.Y/v.RowUnits - 0.5))
	r1 := int(math.Floor(b.Max.Y/v.RowUnits - 0.5))
	if c1 < c0 {
		c1 = c0 // keep slivers visible
	}
	if r1 < r0 {
		r1 = r0
	}
	return core.NewRect(v.Rect.X+c0, v.Rect.Y+r0, c1-c0+1, r1-r0+1)
}
