package engine

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/numblocks/internal/core"
)

// Style describes how a block of a given value is painted.
type Style struct {
	Fill     core.Color   // Cell fill colour
	Border   core.Color   // Outline / label colour
	Gradient []core.Color // When set, cells cycle through these instead of Fill
	Glow     bool         // Terminal value styling (100)
}

const (
	shade     core.Color = "#3A3A3A" // stands in for a translucent black outline
	borderRed core.Color = "#FF0000"
)

var unitStyles = map[int]Style{
	1:  {Fill: "#FF0000", Border: shade},
	2:  {Fill: "#FF8000", Border: shade},
	3:  {Fill: "#FFFF00", Border: shade},
	4:  {Fill: "#00FF00", Border: shade},
	5:  {Fill: "#00FFFF", Border: shade},
	6:  {Fill: "#8A2BE2", Border: shade},
	7:  {Fill: "#FF0000", Border: shade, Gradient: []core.Color{"#FF0000", "#FFFF00", "#00FF00", "#0000FF"}},
	8:  {Fill: "#FF69B4", Border: shade},
	9:  {Fill: "#C0C0C0", Border: shade},
	10: {Fill: "#FFFFFF", Border: borderRed},
}

// StyleFor returns the visual style for a block value.
// Values up to ten have fixed colours; larger values share a hue per ten.
func StyleFor(value int) Style {
	if value <= 10 {
		if s, ok := unitStyles[value]; ok {
			return s
		}
		return unitStyles[1]
	}
	if value >= 100 {
		return Style{Fill: "#FFFFFF", Border: borderRed, Glow: true}
	}

	hue := float64((value / 10 * 36) % 360)
	s := Style{
		Fill:   core.Color(colorful.Hsl(hue, 0.85, 0.75).Hex()),
		Border: shade,
	}
	if value%10 == 0 {
		s.Border = borderRed
	}
	return s
}

// CellColor returns the fill of the i-th cell (row-major) of a block.
func (s Style) CellColor(i int) core.Color {
	if len(s.Gradient) == 0 {
		return s.Fill
	}
	return s.Gradient[i%len(s.Gradient)]
}

// CellSize returns the rendered edge of one unit cell, in surface units.
// Cells shrink stepwise so large values stay on screen.
func CellSize(value int) float64 {
	switch {
	case value > 80:
		return 18
	case value > 50:
		return 22
	case value > 25:
		return 28
	case value > 10:
		return 32
	default:
		return 38
	}
}

// FaceIndex returns the row-major index of the cell that carries the face:
// the horizontally centred cell of the top row.
func FaceIndex(width int) int {
	return width / 2
}
