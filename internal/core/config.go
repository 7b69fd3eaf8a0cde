package core

// RuntimeConfig contains configuration passed to a game session at reset.
// Sessions use this to adapt to screen size and for deterministic spawning.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game session.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the game ended by reaching the win tile
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether a move was applied to the board this tick
}
