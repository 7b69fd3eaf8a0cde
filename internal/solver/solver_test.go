package solver

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

func board(t *testing.T, grid t2048.Grid, score int) *t2048.Board {
	t.Helper()
	b, err := t2048.NewBoardFromGrid(grid, score, t2048.ClassicRules(), 1)
	if err != nil {
		t.Fatalf("NewBoardFromGrid() failed: %v", err)
	}
	return b
}

var midGame = t2048.Grid{
	{2, 4, 8, 16},
	{0, 2, 4, 8},
	{0, 0, 2, 4},
	{0, 0, 0, 2},
}

func TestSearchDoesNotMutateBoard(t *testing.T) {
	b := board(t, midGame, 120)
	before := b.Snapshot()

	FindBestMove(b, 3)
	Rank(b, 2)

	if b.Snapshot() != before {
		t.Errorf("board changed during search:\n%+v\nwant\n%+v", b.Snapshot(), before)
	}
}

func TestSearchDeterminism(t *testing.T) {
	b := board(t, midGame, 120)

	first := Search(b, 3)
	second := Search(b, 3)

	if first != second {
		t.Errorf("Search not deterministic: %+v vs %+v", first, second)
	}

	d1, ok1 := FindBestMove(b, 3)
	d2, ok2 := FindBestMove(b, 3)
	if d1 != d2 || ok1 != ok2 {
		t.Errorf("FindBestMove not deterministic: %s/%v vs %s/%v", d1, ok1, d2, ok2)
	}
}

func TestWinningMoveFound(t *testing.T) {
	// Right is the first direction in enumeration order that merges into 2048.
	b := board(t, t2048.Grid{{1024, 1024, 0, 0}}, 20000)

	res := Search(b, 2)
	if !res.HasDirection || res.Direction != t2048.DirRight {
		t.Fatalf("Search() direction = %s (%v), want Right", res.Direction, res.HasDirection)
	}
	if res.Score != WinScore {
		t.Errorf("Search() score = %d, want WinScore", res.Score)
	}
}

func TestNoOpDirectionsArePruned(t *testing.T) {
	// Only Right and Down change this grid.
	b := board(t, t2048.Grid{{2, 0, 0, 0}}, 0)

	for _, c := range Rank(b, 2) {
		if c.Direction == t2048.DirUp || c.Direction == t2048.DirLeft {
			t.Errorf("no-op direction %s was searched", c.Direction)
		}
	}
}

func TestFallbackOnTerminalRoot(t *testing.T) {
	// A won board is terminal, so the search picks nothing, but moves exist.
	won := board(t, t2048.Grid{{2048, 0, 0, 0}}, 20000)
	if res := Search(won, 3); res.HasDirection {
		t.Errorf("Search on terminal board chose %s", res.Direction)
	}

	dir, ok := FindBestMove(won, 3)
	if !ok || dir != t2048.DirRight {
		t.Errorf("FindBestMove() = %s, %v; want first legal direction Right", dir, ok)
	}

	lost := board(t, t2048.Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, 50)
	if _, ok := FindBestMove(lost, 3); ok {
		t.Error("FindBestMove on a lost board should report no direction")
	}
	if res := Search(lost, 3); res.Score != 1 {
		t.Errorf("lost board score = %d, want 1", res.Score)
	}
}

func TestDepthZeroIsHeuristic(t *testing.T) {
	b := board(t, midGame, 120)
	res := Search(b, 0)

	want := HeuristicScore(120, b.NumberOfEmptyCells(), ClusteringScore(midGame))
	if res.Score != want || res.HasDirection || res.Nodes != 1 {
		t.Errorf("Search(depth 0) = %+v, want score %d with one node", res, want)
	}
}

func TestRankAgreesWithSearch(t *testing.T) {
	b := board(t, midGame, 120)

	ranked := Rank(b, 3)
	if len(ranked) == 0 {
		t.Fatal("Rank() returned no candidates")
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("Rank() not sorted: %+v", ranked)
		}
	}

	res := Search(b, 3)
	if ranked[0].Score != res.Score || ranked[0].Direction != res.Direction {
		t.Errorf("Rank() best = %+v, Search() = %+v", ranked[0], res)
	}
}

func TestSearchVisitsLessThanFullTree(t *testing.T) {
	// Up and Right are no-ops here, so at least half the root is skipped.
	b := board(t, midGame, 120)

	pruned := Search(b, 3).Nodes
	empty := b.NumberOfEmptyCells()
	// 3-ply tree: root, 4 mover children, 2*empty spawns each, 4 moves each.
	full := 1 + 4 + 4*2*empty + 4*2*empty*4
	if pruned >= full {
		t.Errorf("Search visited %d nodes, full tree bound is %d", pruned, full)
	}
}
