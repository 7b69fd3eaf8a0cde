package t2048

// BoardSize is the board dimension.
const BoardSize = 4

// CellCount is the number of cells on the board.
const CellCount = BoardSize * BoardSize

// Grid is a BoardSize x BoardSize matrix of tile values indexed [row][col].
// Zero marks an empty cell.
type Grid [BoardSize][BoardSize]int

// slideRow slides and merges a single row to the left.
// Returns the updated row and the score gained from merges.
func slideRow(row [BoardSize]int) (result [BoardSize]int, score int) {
	writePos := 0
	merged := false // result[writePos-1] already absorbed a tile this move

	for i := range BoardSize {
		if row[i] == 0 {
			continue
		}

		if writePos > 0 && !merged && result[writePos-1] == row[i] {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
		} else {
			result[writePos] = row[i]
			writePos++
			merged = false
		}
	}

	return result, score
}

// reverseRow reverses a row.
func reverseRow(row [BoardSize]int) [BoardSize]int {
	var result [BoardSize]int
	for i := range BoardSize {
		result[i] = row[BoardSize-1-i]
	}
	return result
}

// SlideLeft slides all tiles left and merges.
// Returns the new grid, score gained, and whether the grid changed.
func SlideLeft(grid Grid) (Grid, int, bool) {
	var newGrid Grid
	totalScore := 0

	for y := range BoardSize {
		newRow, score := slideRow(grid[y])
		newGrid[y] = newRow
		totalScore += score
	}

	return newGrid, totalScore, newGrid != grid
}

// SlideRight slides all tiles right and merges.
func SlideRight(grid Grid) (Grid, int, bool) {
	var newGrid Grid
	totalScore := 0

	for y := range BoardSize {
		// Reverse, slide left, reverse back
		newRow, score := slideRow(reverseRow(grid[y]))
		newGrid[y] = reverseRow(newRow)
		totalScore += score
	}

	return newGrid, totalScore, newGrid != grid
}

// SlideUp slides all tiles up and merges.
func SlideUp(grid Grid) (Grid, int, bool) {
	slid, score, changed := SlideLeft(transpose(grid))
	return transpose(slid), score, changed
}

// SlideDown slides all tiles down and merges.
func SlideDown(grid Grid) (Grid, int, bool) {
	slid, score, changed := SlideRight(transpose(grid))
	return transpose(slid), score, changed
}

// transpose returns the matrix transpose.
func transpose(grid Grid) Grid {
	var result Grid
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = grid[x][y]
		}
	}
	return result
}

// Slide performs a move in the given direction.
// Returns the new grid, score gained, and whether the grid changed.
func Slide(grid Grid, dir Direction) (Grid, int, bool) {
	switch dir {
	case DirLeft:
		return SlideLeft(grid)
	case DirRight:
		return SlideRight(grid)
	case DirUp:
		return SlideUp(grid)
	case DirDown:
		return SlideDown(grid)
	default:
		return grid, 0, false
	}
}

// Equal reports whether two grids hold the same tiles.
func Equal(a, b Grid) bool {
	return a == b
}

// CellID converts a (row, col) pair into a linear cell index.
func CellID(row, col int) int {
	return row*BoardSize + col
}

// CellPos converts a linear cell index back into (row, col).
func CellPos(id int) (row, col int) {
	return id / BoardSize, id % BoardSize
}

// EmptyCellIDs returns the linear indices of all empty cells in ascending order.
func EmptyCellIDs(grid Grid) []int {
	ids := make([]int, 0, CellCount)
	for y := range BoardSize {
		for x := range BoardSize {
			if grid[y][x] == 0 {
				ids = append(ids, CellID(y, x))
			}
		}
	}
	return ids
}

// CountEmpty returns the number of empty cells.
func CountEmpty(grid Grid) int {
	n := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if grid[y][x] == 0 {
				n++
			}
		}
	}
	return n
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(grid Grid) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := grid[y][x]
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && grid[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && grid[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(grid Grid) bool {
	return CountEmpty(grid) > 0 || HasPossibleMerge(grid)
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(grid Grid) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if grid[y][x] > maxVal {
				maxVal = grid[y][x]
			}
		}
	}
	return maxVal
}
