package tui

import (
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func press(m tea.Model, msgs ...tea.KeyMsg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func TestMenuSelectClassic(t *testing.T) {
	m := press(NewMenuModel(nil, core.DefaultConfig()), keyEnter).(MenuModel)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if *sel != (MenuSelection{Level: 5}) {
		t.Errorf("selection = %+v", *sel)
	}
}

func TestMenuSelectEndlessAndSolver(t *testing.T) {
	m := press(NewMenuModel(nil, core.DefaultConfig()), keyDown, keyEnter).(MenuModel)
	if sel := m.Selected(); sel == nil || !sel.Endless {
		t.Errorf("expected endless, got %+v", sel)
	}

	m = press(NewMenuModel(nil, core.DefaultConfig()), keyDown, keyDown, keyDown, keyEnter).(MenuModel)
	if sel := m.Selected(); sel == nil || !sel.Autoplay {
		t.Errorf("expected autoplay, got %+v", sel)
	}
}

func TestMenuLevelSelect(t *testing.T) {
	m := press(NewMenuModel(nil, core.DefaultConfig()), keyDown, keyDown, keyEnter).(MenuModel)
	if m.Selected() != nil {
		t.Fatal("opening the level list should not select")
	}
	if !strings.Contains(m.View(), "SELECT LEVEL") {
		t.Error("level list not shown")
	}

	// The cursor starts on the classic level
	m = press(m, keyDown, keyEnter).(MenuModel)
	if sel := m.Selected(); sel == nil || sel.Level != 6 {
		t.Errorf("selection = %+v, want level 6", sel)
	}
}

func TestMenuLevelSelectBack(t *testing.T) {
	m := press(NewMenuModel(nil, core.DefaultConfig()), keyDown, keyDown, keyEnter, keyEsc).(MenuModel)
	if m.IsQuitting() || m.Selected() != nil {
		t.Fatal("esc in the level list should return to the main menu")
	}
	if !strings.Contains(m.View(), "Classic 2048") {
		t.Error("main menu not shown after back")
	}
}

func TestMenuScoreboard(t *testing.T) {
	m := press(NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab}).(MenuModel)
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	store.SaveScore("2048-5", 4321, 256, 300)

	m := NewMenuModel(store, core.DefaultConfig())
	if !strings.Contains(m.View(), "Best: 4321") {
		t.Error("best score not shown")
	}
}

func TestGameDefaultsNewGame(t *testing.T) {
	d := GameDefaults{
		Game:   config.GameConfig{Level: 5, Spawn4Prob: 0.3},
		Solver: config.SolverConfig{Depth: 3},
	}

	g := d.NewGame(MenuSelection{Level: 2})
	if g.Level() != 2 {
		t.Errorf("Level = %d, want 2", g.Level())
	}
	if r := g.Rules(); r.WinTile != 256 || r.Spawn4Prob != 0.3 {
		t.Errorf("Rules = %+v, want level 2 target with configured spawn odds", r)
	}

	endless := d.NewGame(MenuSelection{Level: 5, Endless: true})
	if endless.Rules().WinTile != 0 {
		t.Errorf("endless WinTile = %d", endless.Rules().WinTile)
	}

	auto := d.NewGame(MenuSelection{Level: 5, Autoplay: true})
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	auto.Reset(cfg)
	if !auto.Autoplay() || auto.ID() != game.AutoGameID {
		t.Errorf("autoplay selection: Autoplay=%v ID=%q", auto.Autoplay(), auto.ID())
	}
}

func TestModeTitle(t *testing.T) {
	tests := map[string]string{
		"2048-5":       "5. Classic 2048",
		"2048-1":       "1. Warm-up",
		"2048-auto":    "Solver",
		"2048-endless": "Endless",
		"2048-99":      "2048-99",
		"other":        "other",
	}
	for id, want := range tests {
		if got := ModeTitle(id); got != want {
			t.Errorf("ModeTitle(%q) = %q, want %q", id, got, want)
		}
	}
}

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestPaletteRenderKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 2)
	scr.DrawTextColor(0, 0, "2048", core.ColorRed)
	scr.DrawText(5, 0, "plain")
	scr.DrawTextColor(0, 1, "gray", core.ColorGray)

	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	got := ansiSeq.ReplaceAllString(p.Render(scr), "")
	if got != scr.String() {
		t.Errorf("Render text = %q, want %q", got, scr.String())
	}
}

func TestModelSavesScoreOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	g := game.New(game.Options{Depth: 1, AutoplayInterval: 1})
	cfg := core.DefaultConfig()
	cfg.Seed = 4
	m := NewModel(g, store, cfg, NewPalette(lipgloss.NewRenderer(io.Discard)))
	m.Init()

	var tm tea.Model = m
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 20000 && !tm.(Model).gameState.GameOver; i++ {
		tm, _ = tm.Update(TickMsg{})
	}
	if !tm.(Model).gameState.GameOver {
		t.Fatal("autoplay did not finish the game")
	}

	scores, err := store.TopScores(game.AutoGameID, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	b := g.Board()
	if scores[0].Score != b.Score() || scores[0].MaxTile != b.MaxTile() || scores[0].Moves != g.Moves() {
		t.Errorf("saved %+v, board score %d tile %d moves %d", scores[0], b.Score(), b.MaxTile(), g.Moves())
	}

	// A further tick must not save again
	tm.Update(TickMsg{})
	if scores, _ := store.TopScores(game.AutoGameID, 10); len(scores) != 1 {
		t.Errorf("score saved %d times", len(scores))
	}
}
