package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidGrid is returned when a textual grid cannot be parsed.
var ErrInvalidGrid = errors.New("t2048: invalid grid")

// ParseGrid parses CellCount tile values in row-major order. Values may be
// separated by commas, whitespace or '/' (conventionally used between rows).
func ParseGrid(s string) (Grid, error) {
	var grid Grid

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != CellCount {
		return grid, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidGrid, CellCount, len(fields))
	}

	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return grid, fmt.Errorf("%w: cell %d: %v", ErrInvalidGrid, i, err)
		}
		if !validTile(v) {
			return grid, fmt.Errorf("%w: cell %d: %d is not 0 or a power of two >= 2", ErrInvalidGrid, i, v)
		}
		row, col := CellPos(i)
		grid[row][col] = v
	}

	return grid, nil
}

// FormatGrid is the inverse of ParseGrid: rows joined by '/', cells by ','.
func FormatGrid(grid Grid) string {
	var sb strings.Builder
	for y := range BoardSize {
		if y > 0 {
			sb.WriteByte('/')
		}
		for x := range BoardSize {
			if x > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(grid[y][x]))
		}
	}
	return sb.String()
}

// validTile reports whether v may appear on a board.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}
