package numblocks

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/numblocks/internal/core"
	"github.com/vovakirdan/numblocks/internal/games/numblocks/engine"
)

// drag tracks the one block being moved. Only one pointer may drag at a time.
type drag struct {
	pointer int
	id      uuid.UUID
	offset  core.Vec // Pointer position relative to the block anchor at press
	live    core.Vec // Current anchor; the board keeps the original until drop
}

// press remembers the last primary press for double-click detection.
type press struct {
	id   uuid.UUID
	tick uint64
}

func (g *Game) handleActions(in core.InputFrame) {
	switch {
	case in.Has(core.ActionReset):
		g.cancelDrag()
		g.focus = uuid.Nil
		g.silently(g.level.Reset)
	case in.Has(core.ActionToggleMode):
		g.level.ToggleMode()
	}

	if in.Has(core.ActionSpawnOne) {
		g.spawn(1)
	}
	if in.Has(core.ActionSpawnTen) {
		g.spawn(10)
	}

	if in.Has(core.ActionFocusNext) {
		g.focusNext()
	}
	if in.Has(core.ActionRotate) {
		if id, ok := g.focused(); ok && !g.isDragged(id) {
			g.board.Rotate(id)
		}
	}
	if in.Has(core.ActionSplit) {
		if id, ok := g.focused(); ok && !g.isDragged(id) {
			g.board.Split(id)
		}
	}
}

func (g *Game) spawn(value int) {
	if !g.view.Measured() {
		g.logger.Debug("spawn ignored, surface not measured", "value", value)
		return
	}
	w, h := g.view.Size()
	blk := g.board.Spawn(value, w, h)
	g.focus = blk.ID
}

// focused returns the keyboard focus, falling back to the newest block.
func (g *Game) focused() (uuid.UUID, bool) {
	if _, ok := g.board.Get(g.focus); ok {
		return g.focus, true
	}
	blocks := g.board.Blocks()
	if len(blocks) == 0 {
		return uuid.Nil, false
	}
	g.focus = blocks[len(blocks)-1].ID
	return g.focus, true
}

func (g *Game) focusNext() {
	blocks := g.board.Blocks()
	if len(blocks) == 0 {
		g.focus = uuid.Nil
		return
	}
	next := 0
	for i, b := range blocks {
		if b.ID == g.focus {
			next = (i + 1) % len(blocks)
			break
		}
	}
	g.focus = blocks[next].ID
}

func (g *Game) handlePointer(ev core.PointerEvent) {
	at, inside := g.view.ToSurface(ev.X, ev.Y)

	switch ev.Kind {
	case core.PointerDown:
		if !inside || !g.view.Measured() {
			return
		}
		switch ev.Button {
		case core.ButtonPrimary:
			g.pointerDown(ev.ID, at)
		case core.ButtonSecondary:
			if id, ok := engine.HitTest(g.board.Blocks(), at); ok && !g.isDragged(id) {
				g.focus = id
				g.board.Rotate(id)
			}
		}

	case core.PointerMove:
		if g.drag == nil || g.drag.pointer != ev.ID {
			return
		}
		g.moveDrag(at)

	case core.PointerUp:
		if g.drag == nil || g.drag.pointer != ev.ID {
			return
		}
		g.moveDrag(at)
		g.drop()
	}
}

func (g *Game) pointerDown(pointer int, at core.Vec) {
	if g.drag != nil {
		return // one drag at a time
	}
	id, ok := engine.HitTest(g.board.Blocks(), at)
	if !ok {
		return
	}
	g.focus = id

	window := g.doubleClickTicks()
	if g.lastPress.id == id && g.tick-g.lastPress.tick <= window {
		g.lastPress = press{}
		g.board.Split(id)
		return
	}
	g.lastPress = press{id: id, tick: g.tick}

	blk, _ := g.board.Get(id)
	g.drag = &drag{
		pointer: pointer,
		id:      id,
		offset:  at.Sub(blk.Pos),
		live:    blk.Pos,
	}
}

// moveDrag follows the pointer, keeping the block horizontally on the surface.
func (g *Game) moveDrag(at core.Vec) {
	blk, ok := g.board.Get(g.drag.id)
	if !ok {
		g.cancelDrag()
		return
	}
	w, _ := g.view.Size()
	half := blk.PixelWidth() / 2

	live := at.Sub(g.drag.offset)
	live.X = core.ClampF(live.X, half, w-half)
	g.drag.live = live

	g.highlight = uuid.Nil
	if g.view.Measured() {
		if target, ok := g.board.FindMergeTarget(g.drag.id, live); ok {
			g.highlight = target
		}
	}
}

// drop resolves the drag: merge into the highlighted block, or stay where
// released. A rejected merge leaves the block where it started.
func (g *Game) drop() {
	d := g.drag
	g.drag = nil
	target := g.highlight
	g.highlight = uuid.Nil

	if target == uuid.Nil {
		g.board.Move(d.id, d.live)
		return
	}

	merged, ok := g.board.Merge(d.id, target)
	if !ok {
		return
	}
	g.focus = merged.ID
	if g.level.OnMergeResolved(merged.Value) {
		g.cues = append(g.cues, core.CueSuccess)
	}
}

func (g *Game) cancelDrag() {
	g.drag = nil
	g.highlight = uuid.Nil
}

// dropStaleDrag ends a drag whose block vanished, e.g. on a level clear.
func (g *Game) dropStaleDrag() {
	if g.drag == nil {
		return
	}
	if _, ok := g.board.Get(g.drag.id); !ok {
		g.cancelDrag()
	}
}

func (g *Game) isDragged(id uuid.UUID) bool {
	return g.drag != nil && g.drag.id == id
}

func (g *Game) doubleClickTicks() uint64 {
	window := g.cfg.Timing.DoubleClick()
	if window <= 0 || g.dt <= 0 {
		return 0
	}
	return uint64((window + g.dt - 1) / g.dt)
}
