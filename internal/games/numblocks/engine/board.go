package engine

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/numblocks/internal/core"
)

// Rules holds the tunable distances and limits of the board, in surface units.
type Rules struct {
	MaxValue       int     // Largest value a merge may produce
	MergeTolerance float64 // Extra reach around a footprint for merge detection
	SpawnMargin    float64 // Horizontal clearance kept from the surface edges
	FloorOffset    float64 // Distance of the floor line above the surface bottom
	SplitOffset    float64 // Horizontal offset of a split-off unit block
}

// DefaultRules returns the standard game rules.
func DefaultRules() Rules {
	return Rules{
		MaxValue:       100,
		MergeTolerance: 25,
		SpawnMargin:    20,
		FloorOffset:    10,
		SplitOffset:    50,
	}
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithLogger sets the logger used for debug records.
func WithLogger(l *log.Logger) BoardOption {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithEventSink registers the receiver of board events.
func WithEventSink(fn func(Event)) BoardOption {
	return func(b *Board) {
		b.sink = fn
	}
}

// Board is the authoritative collection of live blocks.
// It is not safe for concurrent use; the game loop owns it.
type Board struct {
	rng    *rand.Rand
	rules  Rules
	blocks []Block
	logger *log.Logger
	sink   func(Event)
}

// NewBoard creates an empty board drawing randomness (positions and ids)
// from rng.
func NewBoard(rng *rand.Rand, rules Rules, opts ...BoardOption) *Board {
	b := &Board{
		rng:    rng,
		rules:  rules,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Rules returns the board's rules.
func (b *Board) Rules() Rules {
	return b.rules
}

// Len returns the number of live blocks.
func (b *Board) Len() int {
	return len(b.blocks)
}

// Blocks returns a copy of the live blocks in board order.
func (b *Board) Blocks() []Block {
	out := make([]Block, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// Get returns the block with the given id.
func (b *Board) Get(id uuid.UUID) (Block, bool) {
	if i := b.index(id); i >= 0 {
		return b.blocks[i], true
	}
	return Block{}, false
}

// Spawn adds a block of the given value resting on the floor at a random
// x that keeps the whole block, plus the spawn margin, inside the surface.
func (b *Board) Spawn(value int, surfaceW, surfaceH float64) Block {
	value = core.Clamp(value, 1, b.rules.MaxValue)
	width := ValidWidths(value)[0]
	half := float64(width) * CellSize(value) / 2

	x := core.ClampF(b.rng.Float64()*surfaceW, half+b.rules.SpawnMargin, surfaceW-half-b.rules.SpawnMargin)
	blk := Block{
		ID:    b.newID(),
		Value: value,
		Width: width,
		Pos:   core.V(x, surfaceH-b.rules.FloorOffset),
	}
	b.blocks = append(b.blocks, blk)

	b.logger.Debug("block spawned", "id", blk.ID, "value", value, "x", x)
	b.emit(Spawned{Block: blk})
	return blk
}

// Rotate advances a block to its next valid width.
// Returns false when the block is unknown or has a single shape.
func (b *Board) Rotate(id uuid.UUID) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	blk := &b.blocks[i]
	if len(ValidWidths(blk.Value)) <= 1 {
		return false
	}

	from := blk.Width
	blk.Width = NextWidth(blk.Value, blk.Width)
	b.emit(Rotated{Block: *blk, From: from})
	return true
}

// Split breaks one unit off a block. The block keeps its id and takes the
// first shape of its new value; the unit appears SplitOffset to the right.
// Returns the new unit block, or false for unknown or unit blocks.
func (b *Board) Split(id uuid.UUID) (Block, bool) {
	i := b.index(id)
	if i < 0 || b.blocks[i].Value <= 1 {
		return Block{}, false
	}

	remaining := b.blocks[i]
	remaining.Value--
	remaining.Width = ValidWidths(remaining.Value)[0]
	fragment := Block{
		ID:    b.newID(),
		Value: 1,
		Width: 1,
		Pos:   core.V(remaining.Pos.X+b.rules.SplitOffset, remaining.Pos.Y),
	}

	b.remove(i)
	b.blocks = append(b.blocks, remaining, fragment)

	b.emit(SplitEvent{Remaining: remaining, Fragment: fragment})
	return fragment, true
}

// Merge combines source into target. The result sits where the target was
// and takes the first shape of the summed value. A merge is rejected when
// the ids are equal or unknown, or when the sum exceeds MaxValue; rejected
// merges leave the board untouched.
func (b *Board) Merge(sourceID, targetID uuid.UUID) (Block, bool) {
	if sourceID == targetID {
		return Block{}, false
	}
	src, ok := b.Get(sourceID)
	if !ok {
		return Block{}, false
	}
	dst, ok := b.Get(targetID)
	if !ok {
		return Block{}, false
	}

	sum := src.Value + dst.Value
	if sum > b.rules.MaxValue {
		b.logger.Debug("merge rejected", "source", src.Value, "target", dst.Value, "sum", sum)
		return Block{}, false
	}

	b.remove(b.index(sourceID))
	b.remove(b.index(targetID))
	merged := Block{
		ID:    b.newID(),
		Value: sum,
		Width: ValidWidths(sum)[0],
		Pos:   dst.Pos,
	}
	b.blocks = append(b.blocks, merged)

	b.logger.Debug("blocks merged", "value", sum)
	b.emit(Merged{Result: merged, Sources: [2]uuid.UUID{sourceID, targetID}})
	return merged, true
}

// Move repositions a live block. Returns false for unknown ids.
func (b *Board) Move(id uuid.UUID, pos core.Vec) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.blocks[i].Pos = pos
	return true
}

// Clear removes every block.
func (b *Board) Clear() {
	b.blocks = b.blocks[:0]
}

// FindMergeTarget applies FindMergeTarget to the board with its tolerance.
func (b *Board) FindMergeTarget(movingID uuid.UUID, at core.Vec) (uuid.UUID, bool) {
	return FindMergeTarget(b.blocks, movingID, at, b.rules.MergeTolerance)
}

func (b *Board) index(id uuid.UUID) int {
	for i := range b.blocks {
		if b.blocks[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) remove(i int) {
	b.blocks = append(b.blocks[:i], b.blocks[i+1:]...)
}

func (b *Board) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(b.rng)
	if err != nil {
		return uuid.New()
	}
	return id
}

func (b *Board) emit(ev Event) {
	if b.sink != nil {
		b.sink(ev)
	}
}
