package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/t2048.yaml
// and is used when the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			Level: 5,
		},
		Solver: SolverConfig{
			Depth:    7,
			AutoHint: true,
		},
		Bench: BenchConfig{
			Games:   10,
			Workers: 4,
			Depth:   5,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
