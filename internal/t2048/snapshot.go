package t2048

// Snapshot captures the observable board state for renderers and storage.
type Snapshot struct {
	Grid    Grid
	Score   int
	MaxTile int
	Empty   int
	WinTile int
	Won     bool
	Over    bool
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Grid:    b.grid,
		Score:   b.score,
		MaxTile: MaxTile(b.grid),
		Empty:   CountEmpty(b.grid),
		WinTile: b.rules.WinTile,
		Won:     b.HasWon(),
		Over:    b.IsGameTerminated(),
	}
}
