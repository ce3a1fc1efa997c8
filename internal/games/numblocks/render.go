package numblocks

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/numblocks/internal/core"
	"github.com/vovakirdan/numblocks/internal/games/numblocks/engine"
	"github.com/vovakirdan/numblocks/internal/games/numblocks/level"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.level == nil {
		return
	}

	g.renderHUD(dst)

	if !g.view.Measured() {
		dst.DrawTextCentered(dst.Height()/2, "Waiting for the terminal size...")
		return
	}

	g.renderFloor(dst)
	for _, b := range g.paintOrder() {
		g.renderBlock(dst, b)
	}
	g.renderOverlays(dst)
	g.renderFooter(dst)
}

// renderHUD draws score, mode and target.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.cfg.Surface.HUDRows <= 0 {
		return
	}

	mode := "CHALLENGE"
	if g.level.Free() {
		mode = "FREE PLAY"
	}
	dst.DrawTextColor(1, 0, "NUMBLOCKS", core.ColorCyan)
	modeX := dst.Width() - len(mode) - 1
	dst.DrawTextColor(modeX, 0, mode, core.ColorMagenta)

	if !g.level.Free() {
		score := fmt.Sprintf("Score: %d", g.level.Score())
		dst.DrawTextColor((dst.Width()-len(score))/2, 0, score, core.ColorBrightWhite)
	}

	if g.cfg.Surface.HUDRows < 2 {
		return
	}
	goal := "Sum up to 100!"
	color := core.ColorMagenta
	if target, ok := g.level.Target(); ok {
		goal = fmt.Sprintf("Target: %d", target)
		color = core.ColorYellow
	}
	dst.DrawTextColor((dst.Width()-len([]rune(goal)))/2, 1, goal, color)
}

// renderFloor draws the line the blocks rest on.
func (g *Game) renderFloor(dst *core.Screen) {
	r := g.view.Rect
	dst.DrawHLine(r.X, r.Bottom()-1, r.W, core.Cell{Rune: '▔', FG: core.ColorGray})
}

// paintOrder returns the blocks back to front, with the dragged block at
// its live position on top of everything.
func (g *Game) paintOrder() []engine.Block {
	ordered := engine.DrawOrder(g.board.Blocks())
	if g.drag == nil {
		return ordered
	}
	for i, b := range ordered {
		if b.ID == g.drag.id {
			b.Pos = g.drag.live
			ordered = append(ordered[:i], ordered[i+1:]...)
			return append(ordered, b)
		}
	}
	return ordered
}

// renderBlock rasterises a block's unit-cell grid into terminal cells.
// Cells fill row-major from the top, so a padded shape leaves the end of
// its bottom row empty.
func (g *Game) renderBlock(dst *core.Screen, b engine.Block) {
	style := engine.StyleFor(b.Value)
	fp := b.Footprint()
	span := g.view.CellSpan(fp)
	cs := b.CellSize()
	rows := b.Height()

	for row := span.Y; row < span.Bottom(); row++ {
		for col := span.X; col < span.Right(); col++ {
			if !g.view.Rect.Contains(col, row) {
				continue
			}
			p, _ := g.view.ToSurface(col, row)
			i := core.Clamp(int((p.X-fp.Min.X)/cs), 0, b.Width-1)
			j := core.Clamp(int((p.Y-fp.Min.Y)/cs), 0, rows-1)
			idx := j*b.Width + i
			if idx >= b.Value {
				continue
			}

			cell := core.Cell{Rune: ' ', BG: style.CellColor(idx), Bold: style.Glow}
			// seam on the first column of every unit cell but the leftmost
			if i > 0 && p.X-fp.Min.X-float64(i)*cs < g.view.ColUnits {
				cell.Rune = '▏'
				cell.FG = style.Border
			}
			dst.SetCell(col, row, cell)
		}
	}

	g.renderFace(dst, b, fp)
	g.renderLabel(dst, b, span)
}

// renderFace puts the eyes on the centred cell of the top row.
func (g *Game) renderFace(dst *core.Screen, b engine.Block, fp core.Box) {
	cs := b.CellSize()
	fi := engine.FaceIndex(b.Width)
	centre := core.V(fp.Min.X+(float64(fi)+0.5)*cs, fp.Min.Y+0.5*cs)
	col, row := g.view.ToCell(centre)

	eyes := "••"
	if b.Value == 1 {
		eyes = "•"
	}
	x := col - len([]rune(eyes))/2
	for i, r := range []rune(eyes) {
		if !g.view.Rect.Contains(x+i, row) {
			continue
		}
		c := dst.GetCell(x+i, row)
		c.Rune = r
		c.FG = core.ColorBlack
		dst.SetCell(x+i, row, c)
	}
}

// renderLabel writes the value above the block.
func (g *Game) renderLabel(dst *core.Screen, b engine.Block, span core.Rect) {
	row := span.Y - 1
	if row < g.view.Rect.Y {
		return
	}

	text := strconv.Itoa(b.Value)
	color := core.ColorBrightWhite
	if b.Value >= 100 {
		text = "★ " + text + " ★"
		color = core.ColorYellow
	}
	switch {
	case b.ID == g.highlight:
		text = "[" + text + "]"
		color = core.ColorYellow
	case b.ID == g.focus:
		text = "‹" + text + "›"
	}

	centre, _ := g.view.ToCell(b.Pos)
	x := centre - len([]rune(text))/2
	dst.DrawTextColor(x, row, text, color)
	for i := range []rune(text) {
		c := dst.GetCell(x+i, row)
		c.Bold = true
		dst.SetCell(x+i, row, c)
	}
}

// renderOverlays draws pause and level-complete banners.
func (g *Game) renderOverlays(dst *core.Screen) {
	r := g.view.Rect
	switch {
	case g.paused:
		g.banner(dst, r.Y+r.H/2, "PAUSED", core.ColorBrightWhite)
	case g.level.Phase() == level.PhaseCelebrating:
		target, _ := g.level.Target()
		g.banner(dst, r.Y+1, fmt.Sprintf("★ %d! Well done ★", target), core.ColorYellow)
	}
}

func (g *Game) banner(dst *core.Screen, row int, text string, color core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColor(x, row, text, color)
}

// renderFooter shows the selected block and sound-independent status.
func (g *Game) renderFooter(dst *core.Screen) {
	if g.cfg.Surface.FooterRows <= 0 {
		return
	}
	row := g.view.Rect.Bottom()

	status := fmt.Sprintf("blocks: %d", g.board.Len())
	if b, ok := g.board.Get(g.focus); ok {
		status += fmt.Sprintf("  selected: %d (%dx%d)", b.Value, b.Width, b.Height())
		if !engine.IsExactShape(b.Value, b.Width) {
			status += " uneven"
		}
	}
	dst.DrawTextColor(1, row, status, core.ColorGray)
}
