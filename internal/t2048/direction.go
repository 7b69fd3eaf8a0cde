package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

// The enumeration order is also the order in which the solver tries moves.
const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every direction in enumeration order.
var Directions = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// String returns a human-readable label for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// ParseDirection converts a name ("up", "Left"), a WASD key or a
// numeric-keypad digit (8/6/2/4) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "w", "8":
		return DirUp, nil
	case "right", "r", "d", "6":
		return DirRight, nil
	case "down", "s", "2":
		return DirDown, nil
	case "left", "l", "a", "4":
		return DirLeft, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}
