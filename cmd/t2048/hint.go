package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/solver"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var (
	flagHintDepth int
	flagHintScore int
	flagHintRank  bool
	flagHintApply string
)

var hintCmd = &cobra.Command{
	Use:   "hint <grid>",
	Short: "Recommend a move for a position",
	Long: `Search a position and print the recommended move.

The grid is 16 tile values in row-major order. Rows may be separated by
'/', cells by commas or spaces. Empty cells are 0.

With --apply the given move is played first (a new tile spawns, seeded by
--seed) and the hint is for the resulting position.

Examples:
  t2048 hint "2,2,0,0/0,4,0,0/0,0,0,0/0,0,0,2"
  t2048 hint "2 4 8 16 32 64 128 256 0 0 0 0 0 0 0 0" --depth 5
  t2048 hint "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0" --rank
  t2048 hint "2,2,0,0/0,4,0,0/0,0,0,0/0,0,0,2" --apply left --seed 7`,
	Args: cobra.ExactArgs(1),
	Run:  runHint,
}

func init() {
	hintCmd.Flags().IntVar(&flagHintDepth, "depth", 0, "Search depth (default from config)")
	hintCmd.Flags().IntVar(&flagHintScore, "score", 0, "Current score of the position")
	hintCmd.Flags().BoolVar(&flagHintRank, "rank", false, "Show the value of every legal move")
	hintCmd.Flags().StringVar(&flagHintApply, "apply", "", "Play this move first (up, right, down, left, wasd or 8/6/2/4)")
}

func runHint(_ *cobra.Command, args []string) {
	cfg := mustSettings()

	grid, err := t2048.ParseGrid(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	depth := cfg.Solver.Depth
	if flagHintDepth > 0 {
		depth = flagHintDepth
	}

	board, err := t2048.NewBoardFromGrid(grid, flagHintScore, cfg.Game.Rules(), flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(formatBoard(board.Grid()))
	fmt.Println()

	if flagHintApply != "" {
		dir, status, err := applyMove(board, flagHintApply)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Played %s: %s (score %d)\n\n", dir, status, board.Score())
		fmt.Print(formatBoard(board.Grid()))
		fmt.Println()
		if status.Terminal() {
			return
		}
	}

	start := time.Now()
	res := solver.Search(board, depth)
	elapsed := time.Since(start)

	dir, ok := res.Direction, res.HasDirection
	if !ok {
		dir, ok = solver.FirstLegalMove(board)
	}
	if !ok {
		fmt.Println("No legal move: the game is over.")
		return
	}
	fmt.Printf("Best move: %s (depth %d, %d positions in %s)\n", dir, depth, res.Nodes, elapsed.Round(time.Millisecond))

	if board.IsGameTerminated() {
		fmt.Println("The position is already won; the move keeps the game going.")
	}

	if !flagHintRank {
		return
	}

	fmt.Println()
	fmt.Printf("  %-6s  %s\n", "Move", "Value")
	fmt.Printf("  %-6s  %s\n", "----", "-----")
	for _, c := range solver.Rank(board, depth) {
		fmt.Printf("  %-6s  %d\n", c.Direction, c.Score)
	}
}

// applyMove plays the named move on b, tile spawn included. A move that
// leaves the board unchanged is an error.
func applyMove(b *t2048.Board, name string) (t2048.Direction, t2048.ActionStatus, error) {
	dir, err := t2048.ParseDirection(name)
	if err != nil {
		return 0, t2048.StatusInvalidMove, err
	}
	status := b.Action(dir)
	if status == t2048.StatusInvalidMove {
		return dir, status, fmt.Errorf("move %s does not change the board", dir)
	}
	return dir, status, nil
}

// formatBoard lays the grid out as right-aligned columns, one row per line.
func formatBoard(grid t2048.Grid) string {
	var sb strings.Builder
	for _, row := range grid {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				fmt.Fprintf(&sb, "%5s", ".")
				continue
			}
			fmt.Fprintf(&sb, "%5d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
