package numblocks

import "github.com/google/uuid"

// BlockSnapshot is the observable state of one block.
type BlockSnapshot struct {
	ID     uuid.UUID
	Value  int
	Width  int
	Height int
	X, Y   float64
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       Mode // Current mode, which may differ from the registered one
	Target     int  // 0 in free mode
	Score      int
	Phase      string
	Generation uint64
	Measured   bool
	Blocks     []BlockSnapshot
	Dragging   bool
	DragID     uuid.UUID
	Highlight  uuid.UUID
	Focus      uuid.UUID
	Paused     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	mode := ModeChallenge
	if g.level.Free() {
		mode = ModeFree
	}
	target, _ := g.level.Target()

	blocks := g.board.Blocks()
	out := make([]BlockSnapshot, len(blocks))
	for i, b := range blocks {
		out[i] = BlockSnapshot{
			ID:     b.ID,
			Value:  b.Value,
			Width:  b.Width,
			Height: b.Height(),
			X:      b.Pos.X,
			Y:      b.Pos.Y,
		}
	}

	snap := Snapshot{
		Tick:       g.tick,
		Mode:       mode,
		Target:     target,
		Score:      g.level.Score(),
		Phase:      g.level.Phase().String(),
		Generation: g.level.Generation(),
		Measured:   g.view.Measured(),
		Blocks:     out,
		Highlight:  g.highlight,
		Focus:      g.focus,
		Paused:     g.paused,
	}
	if g.drag != nil {
		snap.Dragging = true
		snap.DragID = g.drag.id
	}
	return snap
}
