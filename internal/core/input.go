package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionSpawnOne          // 1 - add a unit block
	ActionSpawnTen          // 0 - add a ten block
	ActionToggleMode        // M - challenge <-> free
	ActionReset             // N - clear the board and start a new level
	ActionFocusNext         // Tab - move keyboard focus to the next block
	ActionRotate            // T - cycle the focused block's shape
	ActionSplit             // X - split one unit off the focused block
	ActionPause             // P, Escape - pause/unpause game
	ActionMute              // A - toggle sound
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSpawnOne:
		return "SpawnOne"
	case ActionSpawnTen:
		return "SpawnTen"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionReset:
		return "Reset"
	case ActionFocusNext:
		return "FocusNext"
	case ActionRotate:
		return "Rotate"
	case ActionSplit:
		return "Split"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the phases of a pointer gesture.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerButton identifies which button started a gesture.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
)

// PointerEvent is a single pointer sample in screen (terminal cell) coordinates.
type PointerEvent struct {
	Kind   PointerKind
	ID     int // Pointer identity; a terminal has exactly one
	X, Y   int
	Button PointerButton
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointers holds pointer samples in arrival order.
	Pointers []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer sample to this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointers = append(f.Pointers, ev)
}

// Clear resets all actions and pointer samples for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointers = append(clone.Pointers, f.Pointers...)
	return clone
}
