package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numblocks/internal/core"
)

// styleKey identifies a distinct cell appearance.
type styleKey struct {
	fg, bg core.Color
	bold   bool
}

func keyOf(c core.Cell) styleKey {
	return styleKey{fg: c.FG, bg: c.BG, bold: c.Bold}
}

// styleCache memoises lipgloss styles; block colours are few but repeat
// on every frame.
type styleCache map[styleKey]lipgloss.Style

func (sc styleCache) get(k styleKey) lipgloss.Style {
	if s, ok := sc[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if k.fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(k.bg))
	}
	if k.bold {
		s = s.Bold(true)
	}
	sc[k] = s
	return s
}

var defaultStyles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, defaultStyles)
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
