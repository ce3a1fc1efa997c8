// Package numblocks implements the block-merging number puzzle: numbered
// blocks are dragged onto each other until their sum hits the level target.
package numblocks

import (
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/numblocks/internal/config"
	"github.com/vovakirdan/numblocks/internal/core"
	"github.com/vovakirdan/numblocks/internal/games/numblocks/engine"
	"github.com/vovakirdan/numblocks/internal/games/numblocks/level"
	"github.com/vovakirdan/numblocks/internal/registry"
)

// Mode represents the starting game mode.
type Mode string

const (
	ModeChallenge Mode = "challenge"
	ModeFree      Mode = "free"
)

// Package-level settings applied on Reset, set by the CLI before play.
var (
	gameConfig = config.DefaultNumblocksConfig()
	gameLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by subsequently reset games.
func SetConfig(cfg config.NumblocksConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger handed to the engine and level controller.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	gameLogger = l
}

// Game implements registry.Game for numblocks.
type Game struct {
	mode   Mode
	cfg    config.NumblocksConfig
	logger *log.Logger
	rng    *rand.Rand
	tick   uint64
	dt     time.Duration

	board *engine.Board
	level *level.Controller
	view  Viewport

	drag      *drag
	lastPress press
	highlight uuid.UUID // Current merge target while dragging
	focus     uuid.UUID // Keyboard-selected block

	paused bool
	quiet  bool // Level-driven spawns raise no cues
	cues   []core.Cue
}

// New creates a challenge-mode game.
func New() *Game {
	return &Game{mode: ModeChallenge}
}

// NewFree creates a game that starts in free mode.
func NewFree() *Game {
	return &Game{mode: ModeFree}
}

func init() {
	registry.Register("numblocks", func() registry.Game {
		return New()
	})
	registry.Register("numblocks_free", func() registry.Game {
		return NewFree()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFree {
		return "numblocks_free"
	}
	return "numblocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFree {
		return "Numblocks (Free Play)"
	}
	return "Numblocks"
}

// Reset starts a fresh game: new board, score zero, first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = gameConfig
	g.logger = gameLogger
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.drag = nil
	g.lastPress = press{}
	g.highlight = uuid.Nil
	g.focus = uuid.Nil
	g.cues = g.cues[:0]

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(tickRate)

	rules := engine.Rules{
		MaxValue:       g.cfg.Rules.MaxValue,
		MergeTolerance: g.cfg.Rules.MergeTolerance,
		SpawnMargin:    g.cfg.Rules.SpawnMargin,
		FloorOffset:    g.cfg.Rules.FloorOffset,
		SplitOffset:    g.cfg.Rules.SplitOffset,
	}
	g.board = engine.NewBoard(g.rng, rules,
		engine.WithLogger(g.logger),
		engine.WithEventSink(g.onBoardEvent),
	)

	difficulty := config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Targets)
	opts := level.Options{
		TargetMin:      g.cfg.Targets.Min,
		TargetMax:      g.cfg.Targets.Max,
		CelebrateDelay: g.cfg.Timing.CelebrateDelay(),
		NextLevelDelay: g.cfg.Timing.NextLevelDelay(),
		Free:           g.mode == ModeFree || g.cfg.Mode.Free,
		Logger:         g.logger,
	}
	if difficulty.IsEnabled() {
		opts.Range = difficulty.TargetRange
	}
	g.level = level.New(g.board, g.rng, opts)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.silently(g.level.StartLevel)
}

// Resize adapts the play area to a new terminal size, keeping the board.
func (g *Game) Resize(screenW, screenH int) {
	s := g.cfg.Surface
	g.view = NewViewport(screenW, screenH, s.HUDRows, s.FooterRows, s.ColUnits, s.RowUnits)
	if g.level == nil || !g.view.Measured() {
		return
	}
	w, h := g.view.Size()
	g.silently(func() { g.level.Resize(w, h) })
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.cancelDrag()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.handleActions(in)
	for _, ev := range in.Pointers {
		g.handlePointer(ev)
	}
	g.silently(func() { g.level.Tick(g.dt) })
	g.dropStaleDrag()

	return core.StepResult{State: g.State(), Cues: slices.Clone(g.cues)}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.level != nil {
		score = g.level.Score()
	}
	return core.GameState{
		Score:  score,
		Paused: g.paused,
	}
}

// Controls lists the inputs of the game.
func (g *Game) Controls() []registry.Control {
	return []registry.Control{
		{Keys: "drag", Description: "move a block; drop it on another to add them"},
		{Keys: "double-click", Description: "split one unit off a block"},
		{Keys: "right-click", Description: "change a block's shape"},
		{Keys: "1 / 0", Description: "add a 1 / a 10"},
		{Keys: "tab", Description: "select the next block"},
		{Keys: "t / x", Description: "shape / split the selected block"},
		{Keys: "m", Description: "switch challenge and free play"},
		{Keys: "n", Description: "new level"},
		{Keys: "p", Description: "pause"},
		{Keys: "a", Description: "sound on/off"},
		{Keys: "q", Description: "quit"},
	}
}

// onBoardEvent turns board events into sound cues and keeps the keyboard
// focus on a live block.
func (g *Game) onBoardEvent(ev engine.Event) {
	switch e := ev.(type) {
	case engine.Spawned:
		if !g.quiet {
			g.cues = append(g.cues, core.CueSpawn)
		}
	case engine.Rotated:
		g.cues = append(g.cues, core.CueTransform)
	case engine.SplitEvent:
		g.cues = append(g.cues, core.CueSplit)
	case engine.Merged:
		g.cues = append(g.cues, core.CueMerge)
		if g.focus == e.Sources[0] || g.focus == e.Sources[1] {
			g.focus = e.Result.ID
		}
	}
}

// silently runs a level operation whose board changes are not the
// player's doing, so they make no sound.
func (g *Game) silently(fn func()) {
	g.quiet = true
	defer func() { g.quiet = false }()
	fn()
}
