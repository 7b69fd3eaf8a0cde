package game

import "github.com/vovakirdan/tui-2048/internal/t2048"

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	ID       string
	Level    int
	Moves    int
	Status   t2048.ActionStatus
	Hint     string // Empty when there is no hint
	Autoplay bool
	Board    t2048.Snapshot
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		ID:       g.ID(),
		Level:    g.level,
		Moves:    g.moves,
		Status:   g.status,
		Autoplay: g.autoplay,
		Board:    g.board.Snapshot(),
	}
	if g.hasHint {
		s.Hint = g.hint.String()
	}
	return s
}
