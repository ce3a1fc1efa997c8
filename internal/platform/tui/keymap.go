package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numblocks/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	SpawnOne   key.Binding
	SpawnTen   key.Binding
	ToggleMode key.Binding
	Reset      key.Binding
	FocusNext  key.Binding
	Rotate     key.Binding
	Split      key.Binding
	Pause      key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the one-line help footer.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SpawnOne, k.SpawnTen, k.FocusNext, k.Rotate, k.Split, k.ToggleMode, k.Reset, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SpawnOne, k.SpawnTen, k.FocusNext, k.Rotate, k.Split},
		{k.ToggleMode, k.Reset, k.Pause, k.Mute, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		SpawnOne: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "add 1"),
		),
		SpawnTen: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "add 10"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mode"),
		),
		Reset: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new level"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "shape"),
		),
		Split: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "split"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "sound"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea input messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings, for the help footer.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.SpawnOne):
		return core.ActionSpawnOne, false
	case key.Matches(msg, k.SpawnTen):
		return core.ActionSpawnTen, false
	case key.Matches(msg, k.ToggleMode):
		return core.ActionToggleMode, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.FocusNext):
		return core.ActionFocusNext, false
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, k.Split):
		return core.ActionSplit, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Mute):
		return core.ActionMute, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event. Wheel and
// middle-button input has no meaning in the game and reports false.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = core.PointerDown
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Button = core.ButtonPrimary
		case tea.MouseButtonRight:
			ev.Button = core.ButtonSecondary
		default:
			return ev, false
		}
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMove
	case tea.MouseActionRelease:
		ev.Kind = core.PointerUp
	default:
		return ev, false
	}
	return ev, true
}
