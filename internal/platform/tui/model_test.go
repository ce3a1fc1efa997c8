package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numblocks/internal/core"
)

type fakeGame struct {
	resets  []core.RuntimeConfig
	resizes [][2]int
	frames  []core.InputFrame
	cues    []core.Cue
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{Cues: g.cues}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState { return core.GameState{} }

func (g *fakeGame) Resize(w, h int) {
	g.resizes = append(g.resizes, [2]int{w, h})
}

type fakePlayer struct {
	played []core.Cue
	muted  bool
}

func (p *fakePlayer) PlayAll(cues []core.Cue) { p.played = append(p.played, cues...) }

func (p *fakePlayer) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}

func newTestModel(g *fakeGame, p *fakePlayer) Model {
	return NewModel(g, p, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestInitResetsWithoutHelpLine(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &fakePlayer{})

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if len(g.resets) != 1 || g.resets[0].ScreenH != 11 || g.resets[0].ScreenW != 40 {
		t.Errorf("resets = %+v", g.resets)
	}
}

func TestKeysAndMouseReachNextStep(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &fakePlayer{})

	m = update(t, m, runeKey('1'))
	m = update(t, m, tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("stepped %d times", len(g.frames))
	}
	first := g.frames[0]
	if !first.Has(core.ActionSpawnOne) || len(first.Pointers) != 1 || first.Pointers[0].X != 5 {
		t.Errorf("first frame = %+v", first)
	}
	if second := g.frames[1]; len(second.Actions) != 0 || len(second.Pointers) != 0 {
		t.Errorf("input leaked into the next frame: %+v", second)
	}
}

func TestCuesArePlayed(t *testing.T) {
	g := &fakeGame{cues: []core.Cue{core.CueMerge, core.CueSuccess}}
	p := &fakePlayer{}
	m := newTestModel(g, p)

	update(t, m, TickMsg{})
	if len(p.played) != 2 || p.played[1] != core.CueSuccess {
		t.Errorf("played = %v", p.played)
	}
}

func TestMuteStaysInPlatform(t *testing.T) {
	g := &fakeGame{}
	p := &fakePlayer{}
	m := newTestModel(g, p)

	m = update(t, m, runeKey('a'))
	update(t, m, TickMsg{})

	if !p.muted {
		t.Error("a should mute")
	}
	if g.frames[0].Has(core.ActionMute) {
		t.Error("mute should not reach the game")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, &fakePlayer{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q command is not tea.Quit")
	}
	if next.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestResizeUsesResizer(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &fakePlayer{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(g.resizes) != 1 || g.resizes[0] != [2]int{100, 29} {
		t.Errorf("resizes = %v", g.resizes)
	}
	if len(g.resets) != 1 {
		t.Error("a resizable game should not be reset")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestViewHasHelpLine(t *testing.T) {
	m := newTestModel(&fakeGame{}, &fakePlayer{})
	view := ansi.ReplaceAllString(m.View(), "")
	lines := strings.Split(view, "\n")

	if len(lines) != 12 {
		t.Fatalf("view has %d lines, want 12", len(lines))
	}
	if !strings.HasPrefix(lines[0], "fake board") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[11], "add 1") {
		t.Errorf("help line = %q", lines[11])
	}
}
