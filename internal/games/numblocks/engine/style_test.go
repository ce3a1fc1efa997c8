package engine

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestStyleForUnits(t *testing.T) {
	tests := []struct {
		value  int
		fill   string
		border string
	}{
		{1, "#FF0000", string(shade)},
		{4, "#00FF00", string(shade)},
		{9, "#C0C0C0", string(shade)},
		{10, "#FFFFFF", string(borderRed)},
	}

	for _, tt := range tests {
		s := StyleFor(tt.value)
		if string(s.Fill) != tt.fill || string(s.Border) != tt.border {
			t.Errorf("StyleFor(%d) = %s/%s, want %s/%s", tt.value, s.Fill, s.Border, tt.fill, tt.border)
		}
	}
}

func TestStyleForSevenIsGradient(t *testing.T) {
	s := StyleFor(7)
	if len(s.Gradient) != 4 {
		t.Fatalf("expected a 4-stop gradient, got %v", s.Gradient)
	}
	if s.CellColor(0) == s.CellColor(1) {
		t.Error("adjacent gradient cells should differ")
	}
	if s.CellColor(4) != s.CellColor(0) {
		t.Error("gradient should wrap")
	}
}

func TestStyleForHundredGlows(t *testing.T) {
	s := StyleFor(100)
	if !s.Glow || s.Fill != "#FFFFFF" || s.Border != borderRed {
		t.Errorf("unexpected style for 100: %+v", s)
	}
}

func TestStyleForTensShareHue(t *testing.T) {
	a, b := StyleFor(31), StyleFor(38)
	if a.Fill != b.Fill {
		t.Errorf("31 and 38 should share a fill, got %s and %s", a.Fill, b.Fill)
	}
	if StyleFor(41).Fill == a.Fill {
		t.Error("41 should differ from 31")
	}

	c, err := colorful.Hex(string(a.Fill))
	if err != nil {
		t.Fatalf("fill %q is not hex: %v", a.Fill, err)
	}
	h, _, _ := c.Hsl()
	if h < 107 || h > 109 {
		t.Errorf("hue of 31 = %.1f, want ~108", h)
	}
}

func TestStyleForMultiplesOfTenHaveRedBorder(t *testing.T) {
	for _, v := range []int{20, 50, 90} {
		if StyleFor(v).Border != borderRed {
			t.Errorf("StyleFor(%d) border = %s, want red", v, StyleFor(v).Border)
		}
	}
	if StyleFor(21).Border != shade {
		t.Error("21 should keep the shade border")
	}
}

func TestCellSizeTiers(t *testing.T) {
	tests := []struct {
		value int
		want  float64
	}{
		{1, 38}, {10, 38}, {11, 32}, {25, 32}, {26, 28},
		{50, 28}, {51, 22}, {80, 22}, {81, 18}, {100, 18},
	}
	for _, tt := range tests {
		if got := CellSize(tt.value); got != tt.want {
			t.Errorf("CellSize(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFaceIndex(t *testing.T) {
	for width, want := range map[int]int{1: 0, 2: 1, 3: 1, 10: 5} {
		if got := FaceIndex(width); got != want {
			t.Errorf("FaceIndex(%d) = %d, want %d", width, got, want)
		}
	}
}
