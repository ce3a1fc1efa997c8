package engine

import (
	"slices"
	"testing"
)

func TestValidWidths(t *testing.T) {
	tests := []struct {
		value int
		want  []int
	}{
		{1, []int{1}},
		{2, []int{1}},
		{7, []int{1}},
		{10, []int{1, 2, 5}},
		{11, []int{1}},
		{12, []int{1, 2, 3, 4, 6}},
		{13, []int{2}}, // fallback: no divisor fits, ceil(13/12)
		{24, []int{2, 3, 4, 6, 8}},
		{97, []int{9}}, // prime fallback
		{100, []int{10}},
	}

	for _, tt := range tests {
		got := ValidWidths(tt.value)
		if !slices.Equal(got, tt.want) {
			t.Errorf("ValidWidths(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValidWidthsNonPositiveIsUnit(t *testing.T) {
	for _, v := range []int{0, -3} {
		if got := ValidWidths(v); !slices.Equal(got, []int{1}) {
			t.Errorf("ValidWidths(%d) = %v, want [1]", v, got)
		}
	}
}

func TestValidWidthsProperties(t *testing.T) {
	for v := 1; v <= 100; v++ {
		widths := ValidWidths(v)
		if len(widths) == 0 {
			t.Fatalf("ValidWidths(%d) is empty", v)
		}
		if !slices.IsSorted(widths) {
			t.Errorf("ValidWidths(%d) = %v is not ascending", v, widths)
		}
		if len(slices.Compact(slices.Clone(widths))) != len(widths) {
			t.Errorf("ValidWidths(%d) = %v has duplicates", v, widths)
		}

		for _, w := range widths {
			if w < 1 {
				t.Errorf("ValidWidths(%d) contains width %d < 1", v, w)
			}
			h := HeightFor(v, w)
			if IsExactShape(v, w) {
				if w*h != v {
					t.Errorf("exact shape %d wide should hold %d, holds %d", w, v, w*h)
				}
				if v > 1 && (h < MinHeight || h > MaxHeight) {
					t.Errorf("ValidWidths(%d) width %d gives height %d outside [%d, %d]", v, w, h, MinHeight, MaxHeight)
				}
			} else if w*h <= v {
				t.Errorf("padded shape %d wide should exceed %d cells, got %d", w, v, w*h)
			}
		}
	}
}

func TestValidWidthsTen(t *testing.T) {
	for _, w := range ValidWidths(10) {
		if 10%w != 0 {
			t.Errorf("width %d does not divide 10", w)
		}
		if h := 10 / w; h < 2 || h > 12 {
			t.Errorf("width %d gives height %d outside [2, 12]", w, h)
		}
	}
}

func TestValidWidthsHundred(t *testing.T) {
	widths := ValidWidths(100)
	if len(widths) == 0 {
		t.Fatal("ValidWidths(100) is empty")
	}
	for _, w := range widths {
		if w > 10 || 100/w > 12 {
			t.Errorf("width %d violates limits for 100", w)
		}
	}
}

func TestNextWidthCycles(t *testing.T) {
	for v := 1; v <= 100; v++ {
		widths := ValidWidths(v)
		start := widths[0]
		w := start
		for range widths {
			w = NextWidth(v, w)
		}
		if w != start {
			t.Errorf("value %d: %d rotations ended at %d, want %d", v, len(widths), w, start)
		}
	}
}

func TestNextWidthUnknownRestarts(t *testing.T) {
	if got := NextWidth(12, 5); got != 1 {
		t.Errorf("NextWidth(12, 5) = %d, want 1", got)
	}
	if got := NextWidth(12, 6); got != 1 {
		t.Errorf("NextWidth(12, 6) should wrap to 1, got %d", got)
	}
}

func TestIsValidWidth(t *testing.T) {
	if !IsValidWidth(12, 4) {
		t.Error("4 should be valid for 12")
	}
	if IsValidWidth(12, 5) {
		t.Error("5 should not be valid for 12")
	}
}
