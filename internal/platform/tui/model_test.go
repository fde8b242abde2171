package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravitate/internal/core"
	"github.com/vovakirdan/gravitate/internal/registry"
	"github.com/vovakirdan/gravitate/internal/storage"
)

// stubGame records the input it receives and reports a fixed state.
type stubGame struct {
	state  core.GameState
	result registry.Result
	resets []core.RuntimeConfig
	frames []core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.InputFrame{Actions: map[core.Action]bool{}, Clicks: append([]core.Point(nil), in.Clicks...)}
	for a, v := range in.Actions {
		frame.Actions[a] = v
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState   { return g.state }
func (g *stubGame) Result() registry.Result { return g.result }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelReadsHighScore(t *testing.T) {
	store := openStore(t)
	store.SaveResult("stub", storage.Result{Score: 120, Outcome: storage.OutcomeWon})

	game := &stubGame{}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30})
	m.Init()

	if len(game.resets) != 1 {
		t.Fatalf("Reset called %d times", len(game.resets))
	}
	cfg := game.resets[0]
	if cfg.HighScore != 120 || cfg.Seed == 0 || cfg.TickRate != 30 {
		t.Errorf("Reset config = %+v", cfg)
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	if len(game.frames) != 1 {
		t.Fatalf("Step called %d times", len(game.frames))
	}
	f := game.frames[0]
	if !f.Has(core.ActionRight) {
		t.Error("right arrow not forwarded")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (core.Point{X: 3, Y: 4}) {
		t.Errorf("clicks = %v, want one press at (3,4)", f.Clicks)
	}

	// Input is cleared after each tick.
	update(t, m, TickMsg{})
	if !game.frames[1].Empty() {
		t.Errorf("second frame not empty: %+v", game.frames[1])
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{
		state: core.GameState{Score: 81, GameOver: true, Won: true},
		result: registry.Result{
			RunID: "run-1", Score: 81, Won: true, Columns: 9, Rows: 9, MaxColors: 4,
		},
	}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d results, want 1", len(scores))
	}
	got := scores[0]
	if got.RunID != "run-1" || got.Outcome != storage.OutcomeWon || got.Columns != 9 || got.MaxColors != 4 {
		t.Errorf("saved %+v", got)
	}

	// A new board followed by another loss is saved again.
	game.state = core.GameState{}
	m = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 10, GameOver: true}
	game.result = registry.Result{RunID: "run-2", Score: 10}
	update(t, m, TickMsg{})

	stats, err := store.GetGameStats("stub")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &stubGame{state: core.GameState{GameOver: true}}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
	update(t, m, TickMsg{})

	if scores, _ := store.TopScores("stub", 10); len(scores) != 0 {
		t.Errorf("zero score saved: %+v", scores)
	}
}

func TestModelViewAndResize(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 2})
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 3})

	if m.screen.Width() != 20 || m.screen.Height() != 3 {
		t.Errorf("screen = %dx%d, want 20x3", m.screen.Width(), m.screen.Height())
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "stub") {
		t.Errorf("view = %q", m.View())
	}
}
