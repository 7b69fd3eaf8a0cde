package t2048

import "testing"

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile does not absorb a later pair result",
			input:    [4]int{4, 4, 8, 8},
			expected: [4]int{8, 16, 0, 0},
			score:    24,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no change needed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLeft(t *testing.T) {
	grid := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score, changed := SlideLeft(grid)

	if result != expected {
		t.Errorf("SlideLeft: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("SlideLeft should indicate grid changed")
	}

	expectedScore := 4 + 8 + 4 + 4
	if score != expectedScore {
		t.Errorf("SlideLeft score = %d, want %d", score, expectedScore)
	}
}

func TestSlideRight(t *testing.T) {
	grid := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _, changed := SlideRight(grid)

	if result != expected {
		t.Errorf("SlideRight: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("SlideRight should indicate grid changed")
	}
}

func TestSlideRightResolvesFromLeadingEdge(t *testing.T) {
	grid := Grid{{0, 2, 2, 2}}
	result, score, _ := SlideRight(grid)

	if result[0] != [4]int{0, 0, 2, 4} {
		t.Errorf("SlideRight row = %v, want [0 0 2 4]", result[0])
	}
	if score != 4 {
		t.Errorf("SlideRight score = %d, want 4", score)
	}
}

func TestSlideUp(t *testing.T) {
	grid := Grid{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Grid{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _, changed := SlideUp(grid)

	if result != expected {
		t.Errorf("SlideUp: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("SlideUp should indicate grid changed")
	}
}

func TestSlideDown(t *testing.T) {
	grid := Grid{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _, changed := SlideDown(grid)

	if result != expected {
		t.Errorf("SlideDown: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("SlideDown should indicate grid changed")
	}
}

func TestNoChangeDetected(t *testing.T) {
	grid := Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	// Sliding left when tiles are already left-aligned
	_, score, changed := SlideLeft(grid)

	if changed {
		t.Error("SlideLeft should not change already left-aligned tiles")
	}
	if score != 0 {
		t.Errorf("SlideLeft score = %d, want 0", score)
	}
}

func TestCanMove(t *testing.T) {
	// Grid with no empty cells and no possible merges
	stuck := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if CanMove(stuck) {
		t.Error("Grid with no moves should not be movable")
	}

	withMerge := stuck
	withMerge[0][1] = 2
	if !CanMove(withMerge) {
		t.Error("Grid with possible merge should be movable")
	}

	withEmpty := stuck
	withEmpty[2][2] = 0
	if !CanMove(withEmpty) {
		t.Error("Grid with empty cell should be movable")
	}
}

func TestMaxTile(t *testing.T) {
	grid := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(grid); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCellIDs(t *testing.T) {
	grid := Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	ids := EmptyCellIDs(grid)
	want := []int{1, 3, 4, 6, 9, 11, 12, 14}
	if len(ids) != len(want) {
		t.Fatalf("EmptyCellIDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("EmptyCellIDs[%d] = %d, want %d", i, ids[i], want[i])
		}
		row, col := CellPos(ids[i])
		if grid[row][col] != 0 {
			t.Errorf("cell %d maps to occupied (%d,%d)", ids[i], row, col)
		}
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] sliding left should become [8, 8, 0, 0], not [16, 0, 0, 0]
	row := [4]int{4, 4, 4, 4}
	result, score := slideRow(row)

	expected := [4]int{8, 8, 0, 0}
	if result != expected {
		t.Errorf("slideRow(%v) = %v, want %v (one merge per tile per move)", row, result, expected)
	}

	// Score should be 8+8 = 16, not 8+16 = 24
	if score != 16 {
		t.Errorf("slideRow(%v) score = %d, want 16", row, score)
	}
}

func TestMoveConservation(t *testing.T) {
	grids := []Grid{
		{{2, 2, 4, 4}, {0, 2, 0, 2}, {8, 8, 8, 0}, {16, 0, 16, 2}},
		{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}},
		{{0, 0, 0, 2}, {0, 0, 2, 0}, {0, 2, 0, 0}, {2, 0, 0, 0}},
		{{1024, 1024, 512, 512}, {2, 0, 2, 0}, {0, 0, 0, 0}, {4, 4, 4, 4}},
	}

	for gi, grid := range grids {
		for _, dir := range Directions {
			after, points, _ := Slide(grid, dir)

			// Merging two v tiles removes 2v from the tiles and adds 2v back as
			// one tile, so the sum is unchanged and the points are the new tiles.
			if tileSum(after) != tileSum(grid) {
				t.Errorf("grid %d %s: tile sum %d, want %d", gi, dir, tileSum(after), tileSum(grid))
			}
			if points%4 != 0 {
				t.Errorf("grid %d %s: points %d are not a sum of merged tiles", gi, dir, points)
			}
			for y := range BoardSize {
				for x := range BoardSize {
					if !validTile(after[y][x]) {
						t.Errorf("grid %d %s: invalid tile %d", gi, dir, after[y][x])
					}
				}
			}
			removed := CountEmpty(after) - CountEmpty(grid)
			if removed < 0 {
				t.Errorf("grid %d %s: tiles appeared during slide", gi, dir)
			}
		}
	}
}

// tileSum returns the sum of all tile values.
func tileSum(grid Grid) int {
	total := 0
	for y := range BoardSize {
		for x := range BoardSize {
			total += grid[y][x]
		}
	}
	return total
}
