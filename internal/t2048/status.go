package t2048

// ActionStatus describes the game state after Board.Action.
type ActionStatus int

const (
	StatusContinue ActionStatus = iota
	StatusInvalidMove
	StatusWin
	StatusLose
)

// String returns the human-readable description of the status.
func (s ActionStatus) String() string {
	switch s {
	case StatusContinue:
		return "Continue"
	case StatusInvalidMove:
		return "Invalid move"
	case StatusWin:
		return "Game won"
	case StatusLose:
		return "Game over"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status ends the game.
func (s ActionStatus) Terminal() bool {
	return s == StatusWin || s == StatusLose
}
