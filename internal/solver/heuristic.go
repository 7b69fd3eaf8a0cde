package solver

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// HeuristicScore estimates the value of a non-terminal leaf:
//
//	score + ln(score)*emptyCells - clusteringScore
//
// floored at min(score, 1) so a poor board never looks worse than a lost one
// that scored. ln is undefined at zero, so a non-positive score returns the
// floor directly.
func HeuristicScore(score, emptyCells, clusteringScore int) int {
	floor := min(score, 1)
	if score <= 0 {
		return floor
	}

	value := int(float64(score) + math.Log(float64(score))*float64(emptyCells) - float64(clusteringScore))
	return max(value, floor)
}

// ClusteringScore measures how uneven the board is locally. For every tile
// it averages the absolute difference to the non-empty cells among its eight
// neighbours and sums those averages. A tile with no neighbours adds 0.
func ClusteringScore(grid t2048.Grid) int {
	total := 0

	for i := range t2048.BoardSize {
		for j := range t2048.BoardSize {
			v := grid[i][j]
			if v == 0 {
				continue
			}

			neighbours, sum := 0, 0
			for di := -1; di <= 1; di++ {
				x := i + di
				if x < 0 || x >= t2048.BoardSize {
					continue
				}
				for dj := -1; dj <= 1; dj++ {
					y := j + dj
					if y < 0 || y >= t2048.BoardSize || (di == 0 && dj == 0) {
						continue
					}
					if n := grid[x][y]; n > 0 {
						neighbours++
						sum += abs(v - n)
					}
				}
			}

			if neighbours > 0 {
				total += sum / neighbours
			}
		}
	}

	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
