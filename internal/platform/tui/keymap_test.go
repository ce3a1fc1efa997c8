package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numblocks/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultGameKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"one", runeKey('1'), core.ActionSpawnOne, false},
		{"ten", runeKey('0'), core.ActionSpawnTen, false},
		{"mode", runeKey('m'), core.ActionToggleMode, false},
		{"new level", runeKey('n'), core.ActionReset, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionFocusNext, false},
		{"shape", runeKey('t'), core.ActionRotate, false},
		{"split", runeKey('x'), core.ActionSplit, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"mute", runeKey('a'), core.ActionMute, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultGameKeyMap())
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('1'), &frame) {
		t.Error("1 reported as quit")
	}
	km.MapKeyToFrame(runeKey('z'), &frame)
	if !frame.Has(core.ActionSpawnOne) || len(frame.Actions) != 1 {
		t.Errorf("frame actions = %v", frame.Actions)
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q not reported as quit")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper(DefaultGameKeyMap())

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.PointerEvent
		ok   bool
	}{
		{
			"left press",
			tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			core.PointerEvent{Kind: core.PointerDown, X: 3, Y: 4, Button: core.ButtonPrimary},
			true,
		},
		{
			"right press",
			tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			core.PointerEvent{Kind: core.PointerDown, X: 1, Y: 2, Button: core.ButtonSecondary},
			true,
		},
		{
			"drag motion",
			tea.MouseMsg{X: 7, Y: 8, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			core.PointerEvent{Kind: core.PointerMove, X: 7, Y: 8},
			true,
		},
		{
			"release",
			tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			core.PointerEvent{Kind: core.PointerUp, X: 9, Y: 9},
			true,
		},
		{
			"wheel",
			tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			core.PointerEvent{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.MapMouse(tt.msg)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MapMouse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultGameKeyMap()
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
	if len(keys.FullHelp()) != 2 {
		t.Errorf("FullHelp has %d columns", len(keys.FullHelp()))
	}
}
