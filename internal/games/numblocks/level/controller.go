// Package level drives the challenge loop of numblocks: it picks targets,
// keeps the score and schedules the board reset after a solved level.
package level

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numblocks/internal/games/numblocks/engine"
)

// Phase is the controller's position in the level loop.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingMerge
	PhaseCelebrating
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingMerge:
		return "awaiting_merge"
	case PhaseCelebrating:
		return "celebrating"
	default:
		return "idle"
	}
}

// Options tunes target selection and transition timing.
type Options struct {
	TargetMin      int
	TargetMax      int
	CelebrateDelay time.Duration // Solved level stays on screen this long
	NextLevelDelay time.Duration // Empty surface before the next level spawns
	Free           bool          // Start in free mode
	Logger         *log.Logger

	// Range, when set, overrides TargetMin/TargetMax per level from the score.
	Range func(score int) (lo, hi int)
}

// DefaultOptions returns the standard challenge settings.
func DefaultOptions() Options {
	return Options{
		TargetMin:      10,
		TargetMax:      100,
		CelebrateDelay: 1500 * time.Millisecond,
		NextLevelDelay: 400 * time.Millisecond,
	}
}

type stage int

const (
	stageNone stage = iota
	stageClearBoard
	stageNextLevel
)

// transition is a delayed step bound to the generation that scheduled it.
type transition struct {
	stage      stage
	remaining  time.Duration
	generation uint64
}

// Controller owns level state and drives board resets.
// Like the board, it belongs to the game loop and is not safe for concurrent use.
type Controller struct {
	board  *engine.Board
	rng    *rand.Rand
	opts   Options
	logger *log.Logger

	surfaceW float64
	surfaceH float64
	measured bool
	deferred bool // StartLevel ran before the surface had a size

	target     int
	score      int
	free       bool
	phase      Phase
	generation uint64
	pending    transition
}

// New creates a controller over board. Call StartLevel to begin play.
func New(board *engine.Board, rng *rand.Rand, opts Options) *Controller {
	if opts.TargetMin <= 0 {
		opts.TargetMin = 10
	}
	if opts.TargetMax < opts.TargetMin {
		opts.TargetMax = opts.TargetMin
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		board:  board,
		rng:    rng,
		opts:   opts,
		logger: logger,
		free:   opts.Free,
	}
}

// Resize records the surface size. A level started while the surface was
// unmeasured gets its blocks now.
func (c *Controller) Resize(w, h float64) {
	c.surfaceW, c.surfaceH = w, h
	c.measured = w > 0 && h > 0
	if c.measured && c.deferred {
		c.deferred = false
		c.spawnStart()
	}
}

// Surface returns the last measured surface size.
func (c *Controller) Surface() (w, h float64, ok bool) {
	return c.surfaceW, c.surfaceH, c.measured
}

// StartLevel begins a new level: a fresh target and two unit blocks.
// Any transition still pending from an earlier level is dropped.
func (c *Controller) StartLevel() {
	c.generation++
	c.pending = transition{}
	lo, hi := c.targetRange()
	c.target = lo + c.rng.Intn(hi-lo+1)

	c.logger.Debug("level started", "generation", c.generation, "target", c.target, "free", c.free)

	if !c.measured {
		c.deferred = true
		c.phase = PhaseIdle
		return
	}
	c.spawnStart()
}

func (c *Controller) targetRange() (int, int) {
	lo, hi := c.opts.TargetMin, c.opts.TargetMax
	if c.opts.Range != nil {
		lo, hi = c.opts.Range(c.score)
	}
	return lo, max(lo, hi)
}

func (c *Controller) spawnStart() {
	c.board.Spawn(1, c.surfaceW, c.surfaceH)
	c.board.Spawn(1, c.surfaceW, c.surfaceH)
	c.phase = PhaseAwaitingMerge
}

// OnMergeResolved reports a successful merge. It returns true when the new
// value completes the level, which starts the celebration.
func (c *Controller) OnMergeResolved(newValue int) bool {
	if c.free || c.phase != PhaseAwaitingMerge || newValue != c.target {
		return false
	}

	c.score++
	c.phase = PhaseCelebrating
	c.pending = transition{stage: stageClearBoard, remaining: c.opts.CelebrateDelay, generation: c.generation}

	c.logger.Info("level solved", "target", c.target, "score", c.score)
	return true
}

// Tick advances any pending transition by dt.
func (c *Controller) Tick(dt time.Duration) {
	if c.pending.stage == stageNone {
		return
	}
	if c.pending.generation != c.generation {
		c.pending = transition{}
		return
	}

	c.pending.remaining -= dt
	if c.pending.remaining > 0 {
		return
	}

	switch c.pending.stage {
	case stageClearBoard:
		c.board.Clear()
		c.pending = transition{stage: stageNextLevel, remaining: c.opts.NextLevelDelay, generation: c.generation}
	case stageNextLevel:
		// blocks added during the pause do not carry into the new level
		c.pending = transition{}
		c.board.Clear()
		c.StartLevel()
	}
}

// ToggleMode flips between challenge and free play. Score and board stay.
func (c *Controller) ToggleMode() {
	c.free = !c.free
	c.logger.Debug("mode toggled", "free", c.free)
}

// Reset empties the board and starts a new level. The score is kept.
func (c *Controller) Reset() {
	c.board.Clear()
	c.StartLevel()
}

// Target returns the current target; it is absent in free mode.
func (c *Controller) Target() (int, bool) {
	if c.free {
		return 0, false
	}
	return c.target, true
}

func (c *Controller) Score() int         { return c.score }
func (c *Controller) Free() bool         { return c.free }
func (c *Controller) Phase() Phase       { return c.phase }
func (c *Controller) Generation() uint64 { return c.generation }

// Pending reports whether a level transition is scheduled.
func (c *Controller) Pending() bool {
	return c.pending.stage != stageNone
}
