// Package engine holds the block arrangement and merge rules for numblocks.
// This package is UI-agnostic and deterministic for a given RNG seed.
package engine

// Shape limits for a block rectangle, in unit cells.
const (
	MaxWidth  = 10
	MinHeight = 2
	MaxHeight = 12
)

// ValidWidths returns the rectangle widths a value may take, ascending.
// A width is valid when it divides the value exactly into a column
// height between MinHeight and MaxHeight. The result is never empty.
func ValidWidths(value int) []int {
	if value <= 1 {
		return []int{1}
	}

	var widths []int
	for w := 1; w <= min(value, MaxWidth); w++ {
		if value%w != 0 {
			continue
		}
		if h := value / w; h >= MinHeight && h <= MaxHeight {
			widths = append(widths, w)
		}
	}

	if len(widths) == 0 {
		if value <= MaxWidth {
			return []int{1}
		}
		// May exceed MaxHeight for awkward values (e.g. primes above 12).
		return []int{max(1, ceilDiv(value, MaxHeight))}
	}
	return widths
}

// NextWidth returns the width following current in ValidWidths(value),
// wrapping around. An unknown current width restarts the cycle.
func NextWidth(value, current int) int {
	widths := ValidWidths(value)
	for i, w := range widths {
		if w == current {
			return widths[(i+1)%len(widths)]
		}
	}
	return widths[0]
}

// IsValidWidth reports whether width is one of the value's shapes.
func IsValidWidth(value, width int) bool {
	for _, w := range ValidWidths(value) {
		if w == width {
			return true
		}
	}
	return false
}

// IsExactShape reports whether value fills a width-wide rectangle with no
// partial row.
func IsExactShape(value, width int) bool {
	return width > 0 && value%width == 0
}

// HeightFor returns the number of rows a value occupies at the given width.
func HeightFor(value, width int) int {
	if width <= 0 {
		width = 1
	}
	return ceilDiv(value, width)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
