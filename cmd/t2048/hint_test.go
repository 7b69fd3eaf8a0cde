package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

func TestFormatBoard(t *testing.T) {
	grid, err := t2048.ParseGrid("2,0,0,2048/0,0,0,0/0,0,0,0/4,8,16,32")
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(formatBoard(grid), "\n"), "\n")
	if len(lines) != t2048.BoardSize {
		t.Fatalf("got %d lines, expected %d", len(lines), t2048.BoardSize)
	}

	expected := []string{
		"    2     .     .  2048",
		"    .     .     .     .",
		"    .     .     .     .",
		"    4     8    16    32",
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want)
		}
	}
}

func TestApplyMove(t *testing.T) {
	rules := t2048.ClassicRules()

	tests := []struct {
		name      string
		grid      string
		move      string
		wantErr   bool
		wantScore int
	}{
		{"merge left", "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0", "left", false, 4},
		{"keypad digit", "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0", "4", false, 4},
		{"slide right", "2,4,0,0/0,0,0,0/0,0,0,0/0,0,0,0", "d", false, 0},
		{"no-op", "2,4,0,0/0,0,0,0/0,0,0,0/0,0,0,0", "up", true, 0},
		{"unknown name", "2,4,0,0/0,0,0,0/0,0,0,0/0,0,0,0", "diagonal", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := t2048.ParseGrid(tc.grid)
			if err != nil {
				t.Fatalf("ParseGrid: %v", err)
			}
			b, err := t2048.NewBoardFromGrid(grid, 0, rules, 7)
			if err != nil {
				t.Fatalf("NewBoardFromGrid: %v", err)
			}
			before := t2048.CountEmpty(b.Grid())

			_, status, err := applyMove(b, tc.move)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("applyMove(%q) should fail", tc.move)
				}
				if b.Grid() != grid || b.Score() != 0 {
					t.Errorf("failed move changed the board: %v score %d", b.Grid(), b.Score())
				}
				return
			}
			if err != nil {
				t.Fatalf("applyMove(%q): %v", tc.move, err)
			}
			if status != t2048.StatusContinue {
				t.Errorf("status = %s, want Continue", status)
			}
			if b.Score() != tc.wantScore {
				t.Errorf("score = %d, want %d", b.Score(), tc.wantScore)
			}
			merged := tc.wantScore / 4
			if got := t2048.CountEmpty(b.Grid()); got != before+merged-1 {
				t.Errorf("empty cells = %d, want %d (one spawned tile)", got, before+merged-1)
			}
		})
	}
}
