// Package registry keeps the factories of the playable game modes.
// Modes register themselves in init() so the CLI and the platform can list
// and create them by id.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/numblocks/internal/core"
)

// Game is the contract between a game mode and the platform.
// Implementations hold pure logic and never import Bubble Tea; the platform
// owns timing, terminal input and painting.
type Game interface {
	// ID returns the mode identifier used on the command line (e.g. "numblocks").
	ID() string

	// Title returns the display name.
	Title() string

	// Reset (re)starts the game for the given terminal size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions and pointer events
	// collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render paints the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, pause and game-over flags.
	State() core.GameState
}

// Control documents one input of a game for help screens.
type Control struct {
	Keys        string
	Description string
}

// ControlsProvider is implemented by games that describe their own inputs.
type ControlsProvider interface {
	Controls() []Control
}

// Resizer is implemented by games that keep their state across terminal
// resizes. Other games are Reset with the new size.
type Resizer interface {
	Resize(screenW, screenH int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}

// ControlsOf returns the controls a game documents, if any.
func ControlsOf(g Game) []Control {
	if p, ok := g.(ControlsProvider); ok {
		return p.Controls()
	}
	return nil
}
