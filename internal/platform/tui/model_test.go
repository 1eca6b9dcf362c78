package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/audio"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/storage"
)

// fakeGame records what the model feeds it and reports a scripted state.
type fakeGame struct {
	state  core.GameState
	frames []core.InputFrame
	resets int
	player audio.Player
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) SetAudio(p audio.Player)  { g.player = p }
func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) lastFrame() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelAttachesAudio(t *testing.T) {
	g := &fakeGame{}
	NewModel(g, nil, testConfig(), nil)
	if _, ok := g.player.(audio.Silent); !ok {
		t.Errorf("player = %T, expected audio.Silent when none is given", g.player)
	}
}

func TestModelKeysReachGameOnTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, runeKey('d'))
	if len(g.frames) != 0 {
		t.Fatal("keys should not step the game")
	}

	m = update(t, m, TickMsg{})
	f := g.lastFrame()
	if !f.Has(core.ActionFire) || !f.Has(core.ActionRight) {
		t.Errorf("pressed = %v, expected Right and Fire", f.Pressed())
	}
	if !f.IsHeld(core.ActionRight) {
		t.Error("Right should be held")
	}

	update(t, m, TickMsg{})
	f = g.lastFrame()
	if f.Has(core.ActionFire) {
		t.Error("Fire should only be pressed for one tick")
	}
	if !f.IsHeld(core.ActionRight) {
		t.Error("Right should stay held")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testConfig(), nil)

	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 420, Level: 3, GameOver: true}
	for range 5 {
		m = update(t, m, TickMsg{})
	}

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 420 || scores[0].Level != 3 {
		t.Errorf("saved (%d, level %d), expected (420, level 3)", scores[0].Score, scores[0].Level)
	}

	// A new game started, then ended again
	g.state = core.GameState{Score: 10, Level: 1}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 10, Level: 1, GameOver: true}
	update(t, m, TickMsg{})

	scores, _ = store.AllScores("fake")
	if len(scores) != 2 {
		t.Errorf("saved %d scores after second game, expected 2", len(scores))
	}
}

func TestModelSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{state: core.GameState{GameOver: true, Level: 1}}
	m := NewModel(g, store, testConfig(), nil)
	update(t, m, TickMsg{})

	scores, _ := store.AllScores("fake")
	if len(scores) != 0 {
		t.Errorf("saved %d scores, expected none", len(scores))
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), nil)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1 (resize must not restart)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), nil)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelBack(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), nil)
	m.inSession = true

	// Ignored while playing
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored mid-game")
	}

	g.state = core.GameState{Paused: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should return to the menu while paused")
	}
	if m.IsQuitting() {
		t.Error("back in a session should not quit")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), nil)
	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("view should contain the game render")
	}
	if !strings.Contains(view, "fire") {
		t.Error("view should end with the key help")
	}
}
