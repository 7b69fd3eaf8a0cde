// Package config provides YAML-based configuration loading and difficulty
// presets for the game, the solver and the servers.
package config

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Solver  SolverConfig  `yaml:"solver"`
	Bench   BenchConfig   `yaml:"bench"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig selects the rules a game is played with.
type GameConfig struct {
	Level      int     `yaml:"level"`       // 1-based preset, see t2048.Levels
	WinTile    int     `yaml:"win_tile"`    // Overrides the level target when > 0
	Spawn4Prob float64 `yaml:"spawn4_prob"` // Overrides the level probability when > 0
	Endless    bool    `yaml:"endless"`     // Never stop at the win tile
}

// SolverConfig configures hints.
type SolverConfig struct {
	Depth    int  `yaml:"depth"`
	AutoHint bool `yaml:"auto_hint"`
}

// BenchConfig configures accuracy estimation runs.
type BenchConfig struct {
	Games   int `yaml:"games"`
	Workers int `yaml:"workers"`
	Depth   int `yaml:"depth"`
}

// StorageConfig locates the scores database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}
