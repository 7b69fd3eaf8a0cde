// Package solver recommends 2048 moves with a depth-limited alpha-beta search.
//
// The search alternates two plies: the mover, who picks one of the four
// slide directions to maximize the outcome, and the spawner, who places a 2
// or a 4 in any empty cell to minimize it. The spawner is treated as hostile
// rather than random, which is what lets alpha-beta pruning apply.
//
// The solver holds no state between calls and never mutates the board it is
// given; every hypothetical position is explored on a clone.
package solver

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// DefaultDepth is the hint depth used when none is configured.
const DefaultDepth = 7

// WinScore is the value of a position in which the win tile is on the board.
const WinScore = math.MaxInt

// spawnValues are the tiles the spawner may place.
var spawnValues = [...]int{2, 4}

// role selects which ply's logic applies at a recursion level.
type role int

const (
	mover role = iota
	spawner
)

// Result is the outcome of a search from the root position.
type Result struct {
	Score        int
	Direction    t2048.Direction
	HasDirection bool // false when no direction improved on the initial bound
	Nodes        int  // positions visited
}

// node is the value of a single search position.
type node struct {
	score int
	dir   t2048.Direction
	ok    bool
}

type searcher struct {
	nodes int
}

// FindBestMove returns the direction judged best for b at the given depth.
// If the search selects no direction (the root is already terminal), the
// first legal direction in enumeration order is returned instead. The second
// result is false only when no direction changes the board.
func FindBestMove(b *t2048.Board, depth int) (t2048.Direction, bool) {
	res := Search(b, depth)
	if res.HasDirection {
		return res.Direction, true
	}
	return FirstLegalMove(b)
}

// Search runs the alpha-beta search on a copy of b.
func Search(b *t2048.Board, depth int) Result {
	s := &searcher{}
	n := s.alphabeta(b.Clone(), max(depth, 0), math.MinInt, math.MaxInt, mover)
	return Result{
		Score:        n.score,
		Direction:    n.dir,
		HasDirection: n.ok,
		Nodes:        s.nodes,
	}
}

// FirstLegalMove returns the first direction, in enumeration order, that
// changes the board.
func FirstLegalMove(b *t2048.Board) (t2048.Direction, bool) {
	for _, dir := range t2048.Directions {
		if _, _, changed := t2048.Slide(b.Grid(), dir); changed {
			return dir, true
		}
	}
	return 0, false
}

// Candidate is the searched value of one legal root move.
type Candidate struct {
	Direction t2048.Direction
	Score     int
}

// Rank searches every legal root move with a full window and returns them
// best first. Ties keep enumeration order. Used to explain a hint; it visits
// more positions than Search because the root is not pruned.
func Rank(b *t2048.Board, depth int) []Candidate {
	depth = max(depth, 1)
	grid := b.Grid()

	var out []Candidate
	for _, dir := range t2048.Directions {
		next := b.Clone()
		points := next.Move(dir)
		if points == 0 && t2048.Equal(grid, next.Grid()) {
			continue
		}

		s := &searcher{}
		n := s.alphabeta(next, depth-1, math.MinInt, math.MaxInt, spawner)
		out = append(out, Candidate{Direction: dir, Score: n.score})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return out
}

func (s *searcher) alphabeta(b *t2048.Board, depth, alpha, beta int, r role) node {
	s.nodes++

	if b.IsGameTerminated() {
		if b.HasWon() {
			return node{score: WinScore}
		}
		return node{score: min(b.Score(), 1)}
	}

	if depth == 0 {
		return node{score: HeuristicScore(b.Score(), b.NumberOfEmptyCells(), ClusteringScore(b.Grid()))}
	}

	switch r {
	case mover:
		return s.maximize(b, depth, alpha, beta)
	case spawner:
		return s.minimize(b, depth, alpha, beta)
	default:
		panic("solver: unknown role")
	}
}

// maximize is the mover ply. Directions that leave the grid unchanged are
// pruned from the tree.
func (s *searcher) maximize(b *t2048.Board, depth, alpha, beta int) node {
	var best node
	grid := b.Grid()

	for _, dir := range t2048.Directions {
		next := b.Clone()
		points := next.Move(dir)
		if points == 0 && t2048.Equal(grid, next.Grid()) {
			continue
		}

		child := s.alphabeta(next, depth-1, alpha, beta, spawner)
		if child.score > alpha {
			alpha = child.score
			best.dir = dir
			best.ok = true
		}

		if beta <= alpha {
			break
		}
	}

	best.score = alpha
	return best
}

// minimize is the spawner ply: every empty cell with every spawn value.
func (s *searcher) minimize(b *t2048.Board, depth, alpha, beta int) node {
	empty := b.EmptyCellIDs()
	if len(empty) == 0 {
		return node{score: 0}
	}

cells:
	for _, id := range empty {
		row, col := t2048.CellPos(id)
		for _, value := range spawnValues {
			next := b.Clone()
			next.SetEmptyCell(row, col, value)

			child := s.alphabeta(next, depth-1, alpha, beta, mover)
			if child.score < beta {
				beta = child.score
			}

			if beta <= alpha {
				break cells
			}
		}
	}

	return node{score: beta}
}
