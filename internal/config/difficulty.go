package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// ErrUnknownPreset is returned for a difficulty preset name that does not exist.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// ApplyPreset adjusts the spawn odds and hint depth for a preset.
// Easy games spawn fewer fours and get deeper hints; hard games the opposite.
// Fixed leaves the configuration untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.Spawn4Prob = 0.05
		cfg.Solver.Depth = max(cfg.Solver.Depth, 7)
	case DifficultyNormal:
		cfg.Game.Spawn4Prob = 0.10
	case DifficultyHard:
		cfg.Game.Spawn4Prob = 0.25
		cfg.Solver.Depth = min(cfg.Solver.Depth, 5)
	}
}

// Rules resolves the game rules: the level preset, then explicit overrides.
func (g GameConfig) Rules() t2048.Rules {
	level := t2048.GetLevel(g.Level - 1)
	if level == nil {
		level = t2048.GetLevel(t2048.ClassicLevel - 1)
	}

	rules := level.Rules()
	if g.WinTile > 0 {
		rules.WinTile = g.WinTile
	}
	if g.Spawn4Prob > 0 {
		rules.Spawn4Prob = g.Spawn4Prob
	}
	if g.Endless {
		rules.WinTile = 0
	}
	return rules
}
