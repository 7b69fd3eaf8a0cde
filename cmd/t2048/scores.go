package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Without a mode, list every mode that has scores with its statistics.
With a mode, display its top scores.

Modes are 2048-<level> (for example 2048-5 for Classic), 2048-endless and
2048-auto for games the solver played.

Examples:
  t2048 scores
  t2048 scores 2048-5
  t2048 scores 2048-auto --limit 20
  t2048 scores 2048-endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	cfg := mustSettings()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
			return
		}
		listModes(store)
		return
	}

	gameID := args[0]
	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s\n", tui.ModeTitle(gameID))
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", tui.ModeTitle(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Moves, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Best tile: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestTile)
	}
}

func listModes(store *storage.Store) {
	ids, err := store.GameIDs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving modes: %v\n", err)
		return
	}
	if len(ids) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-14s  %-26s  %-5s  %-8s  %s\n", "Mode", "Title", "Games", "Best", "Best tile")
	fmt.Printf("  %-14s  %-26s  %-5s  %-8s  %s\n", "----", "-----", "-----", "----", "---------")
	for _, id := range ids {
		stats, err := store.GetGameStats(id)
		if err != nil {
			continue
		}
		fmt.Printf("  %-14s  %-26s  %-5d  %-8d  %d\n", id, tui.ModeTitle(id), stats.GamesCount, stats.HighScore, stats.BestTile)
	}
}
