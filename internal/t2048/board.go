package t2048

import (
	"fmt"
	"math/rand/v2"
)

// pcgStream is the fixed second PCG word; boards differ only by seed.
const pcgStream = 0x2048_2048_2048_2048

// Board is the authoritative 2048 game state: grid, score and the rules the
// game is played with. All fields are values, so copying a Board (see Clone)
// yields a fully independent board, including the state of its spawn RNG.
type Board struct {
	grid  Grid
	score int
	rules Rules
	src   rand.PCG

	lastSpawn int // cell id of the most recent spawn, -1 if none
}

// NewBoard creates an empty board with two seed tiles.
func NewBoard(rules Rules, seed int64) *Board {
	b := &Board{
		rules:     rules,
		src:       *rand.NewPCG(uint64(seed), pcgStream),
		lastSpawn: -1,
	}
	b.spawnTile()
	b.spawnTile()
	return b
}

// NewBoardFromGrid creates a board positioned at the given grid and score.
// No tiles are spawned. Returns ErrInvalidGrid if a cell holds a value that
// cannot appear in play.
func NewBoardFromGrid(grid Grid, score int, rules Rules, seed int64) (*Board, error) {
	for y := range BoardSize {
		for x := range BoardSize {
			if !validTile(grid[y][x]) {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidGrid, y, x, grid[y][x])
			}
		}
	}
	if score < 0 {
		return nil, fmt.Errorf("%w: negative score %d", ErrInvalidGrid, score)
	}

	return &Board{
		grid:      grid,
		score:     score,
		rules:     rules,
		src:       *rand.NewPCG(uint64(seed), pcgStream),
		lastSpawn: -1,
	}, nil
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Action plays a full turn: slide and merge in dir, then spawn one tile and
// evaluate the terminal conditions. A move that changes nothing returns
// StatusInvalidMove and leaves the board untouched. A board that is already
// terminal is never mutated.
func (b *Board) Action(dir Direction) ActionStatus {
	if b.IsGameTerminated() {
		if b.HasWon() {
			return StatusWin
		}
		return StatusLose
	}

	before := b.grid
	points := b.Move(dir)
	if points == 0 && Equal(before, b.grid) {
		return StatusInvalidMove
	}

	b.spawnTile()

	switch {
	case b.HasWon():
		return StatusWin
	case b.IsGameTerminated():
		return StatusLose
	default:
		return StatusContinue
	}
}

// Move slides and merges the tiles in dir without spawning, adds the merge
// points to the score and returns them. Used to explore hypothetical moves.
func (b *Board) Move(dir Direction) int {
	grid, points, _ := Slide(b.grid, dir)
	b.grid = grid
	b.score += points
	return points
}

// spawnTile places a 2 (or a 4 with Spawn4Prob) into a uniformly chosen
// empty cell. Does nothing on a full board.
func (b *Board) spawnTile() {
	empty := EmptyCellIDs(b.grid)
	if len(empty) == 0 {
		return
	}

	rng := rand.New(&b.src)
	id := empty[rng.IntN(len(empty))]

	value := 2
	if rng.Float64() < b.rules.Spawn4Prob {
		value = 4
	}

	row, col := CellPos(id)
	b.grid[row][col] = value
	b.lastSpawn = id
}

// IsGameTerminated reports whether the game is over: the win tile has been
// reached or no direction changes the grid.
func (b *Board) IsGameTerminated() bool {
	return b.HasWon() || !CanMove(b.grid)
}

// HasWon reports whether the win tile is on the board. A WinTile of zero
// (endless play) never wins.
func (b *Board) HasWon() bool {
	return b.rules.WinTile > 0 && MaxTile(b.grid) >= b.rules.WinTile
}

// EmptyCellIDs returns the linear ids (row*BoardSize+col) of empty cells.
func (b *Board) EmptyCellIDs() []int {
	return EmptyCellIDs(b.grid)
}

// SetEmptyCell places value into the empty cell at (row, col). It exists for
// search exploration; addressing a cell out of range or one that is occupied
// is a programming error and panics.
func (b *Board) SetEmptyCell(row, col, value int) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		panic(fmt.Sprintf("t2048: cell (%d,%d) out of range", row, col))
	}
	if b.grid[row][col] != 0 {
		panic(fmt.Sprintf("t2048: cell (%d,%d) is not empty", row, col))
	}
	b.grid[row][col] = value
}

// NumberOfEmptyCells returns the count of empty cells.
func (b *Board) NumberOfEmptyCells() int {
	return CountEmpty(b.grid)
}

// Grid returns a copy of the grid.
func (b *Board) Grid() Grid {
	return b.grid
}

// Score returns the accumulated merge points.
func (b *Board) Score() int {
	return b.score
}

// Rules returns the rules the board is played with.
func (b *Board) Rules() Rules {
	return b.rules
}

// MaxTile returns the highest tile on the board.
func (b *Board) MaxTile() int {
	return MaxTile(b.grid)
}

// LastSpawn returns the cell id of the most recently spawned tile.
func (b *Board) LastSpawn() (id int, ok bool) {
	return b.lastSpawn, b.lastSpawn >= 0
}
