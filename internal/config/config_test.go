package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPathOverridesSomeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("game:\n  level: 3\nsolver:\n  depth: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.Level != 3 {
		t.Errorf("Game.Level = %d, want 3", cfg.Game.Level)
	}
	if cfg.Solver.Depth != 4 {
		t.Errorf("Solver.Depth = %d, want 4", cfg.Solver.Depth)
	}
	// Untouched keys keep their defaults.
	if cfg.Bench.Games != Default().Bench.Games {
		t.Errorf("Bench.Games = %d, want default %d", cfg.Bench.Games, Default().Bench.Games)
	}
	if !cfg.Solver.AutoHint {
		t.Error("Solver.AutoHint lost its default")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("game: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{Game: GameConfig{Level: 42}, Solver: SolverConfig{Depth: -1}}.normalize()
	def := Default()

	if cfg.Game.Level != def.Game.Level {
		t.Errorf("Game.Level = %d, want %d", cfg.Game.Level, def.Game.Level)
	}
	if cfg.Solver.Depth != def.Solver.Depth {
		t.Errorf("Solver.Depth = %d, want %d", cfg.Solver.Depth, def.Solver.Depth)
	}
	if cfg.Storage.DBPath != def.Storage.DBPath {
		t.Errorf("Storage.DBPath = %q, want %q", cfg.Storage.DBPath, def.Storage.DBPath)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Default()
	want.Game.Level = 7
	want.Bench.Workers = 2

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q): %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(nightmare) err = %v, want ErrUnknownPreset", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		wantSpawn4 float64
		wantDepth  int
	}{
		{DifficultyEasy, 0.05, 7},
		{DifficultyNormal, 0.10, 6},
		{DifficultyHard, 0.25, 5},
		{DifficultyFixed, 0, 6},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := Default()
			cfg.Solver.Depth = 6
			ApplyPreset(&cfg, tt.preset)
			if cfg.Game.Spawn4Prob != tt.wantSpawn4 {
				t.Errorf("Spawn4Prob = %v, want %v", cfg.Game.Spawn4Prob, tt.wantSpawn4)
			}
			if cfg.Solver.Depth != tt.wantDepth {
				t.Errorf("Depth = %d, want %d", cfg.Solver.Depth, tt.wantDepth)
			}
		})
	}
}

func TestGameRules(t *testing.T) {
	tests := []struct {
		name      string
		game      GameConfig
		wantWin   int
		wantSpawn float64
	}{
		{"classic", GameConfig{Level: 5}, 2048, 0.10},
		{"level one", GameConfig{Level: 1}, 128, 0.10},
		{"out of range falls back", GameConfig{Level: 99}, 2048, 0.10},
		{"win override", GameConfig{Level: 5, WinTile: 512}, 512, 0.10},
		{"spawn override", GameConfig{Level: 5, Spawn4Prob: 0.5}, 2048, 0.5},
		{"endless", GameConfig{Level: 5, WinTile: 512, Endless: true}, 0, 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.game.Rules()
			if r.WinTile != tt.wantWin {
				t.Errorf("WinTile = %d, want %d", r.WinTile, tt.wantWin)
			}
			if r.Spawn4Prob != tt.wantSpawn {
				t.Errorf("Spawn4Prob = %v, want %v", r.Spawn4Prob, tt.wantSpawn)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Errorf("ExpandHome(/abs/path) = %q, %v", got, err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "x.db") {
		t.Errorf("ExpandHome(~/x.db) = %q", got)
	}
}
