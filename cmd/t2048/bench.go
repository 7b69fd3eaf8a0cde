package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/bench"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagBenchGames    int
	flagBenchWorkers  int
	flagBenchDepth    int
	flagBenchMaxMoves int
	flagBenchNoSave   bool
	flagBenchHistory  int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Let the solver play and report its win rate",
	Long: `Play a number of games with the solver choosing every move and report
how often it reaches the win tile.

Game i is played with seed+i, so a run with a fixed --seed is reproducible
regardless of the number of workers. Every game is saved to the scores
database under the autoplay mode, and the run summary is kept for --history.

Examples:
  t2048 bench
  t2048 bench --games 50 --workers 8 --depth 4
  t2048 bench --seed 1 --difficulty hard
  t2048 bench --history 10`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 0, "Number of games (default from config)")
	benchCmd.Flags().IntVar(&flagBenchWorkers, "workers", 0, "Games played in parallel (default from config)")
	benchCmd.Flags().IntVar(&flagBenchDepth, "depth", 0, "Search depth (default from config)")
	benchCmd.Flags().IntVar(&flagBenchMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = no limit)")
	benchCmd.Flags().BoolVar(&flagBenchNoSave, "no-save", false, "Do not record games and results")
	benchCmd.Flags().IntVar(&flagBenchHistory, "history", 0, "Show the last N runs instead of playing")
}

func runBench(_ *cobra.Command, _ []string) {
	cfg := mustSettings()
	logger := newLogger("bench", cfg.Log.Level)

	var store *storage.Store
	if !flagBenchNoSave || flagBenchHistory > 0 {
		store = openStore(cfg.Storage.DBPath)
	}
	if store != nil {
		defer store.Close()
	}

	if flagBenchHistory > 0 {
		if store == nil {
			os.Exit(1)
		}
		printBenchHistory(store, flagBenchHistory)
		return
	}

	opts := bench.Options{
		Games:    cfg.Bench.Games,
		Workers:  cfg.Bench.Workers,
		Depth:    cfg.Bench.Depth,
		Seed:     flagSeed,
		Rules:    cfg.Game.Rules(),
		MaxMoves: flagBenchMaxMoves,
		Logger:   logger,
	}
	if flagBenchGames > 0 {
		opts.Games = flagBenchGames
	}
	if flagBenchWorkers > 0 {
		opts.Workers = flagBenchWorkers
	}
	if flagBenchDepth > 0 {
		opts.Depth = flagBenchDepth
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if store != nil {
		opts.Recorder = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting benchmark",
		"games", opts.Games, "workers", opts.Workers, "depth", opts.Depth,
		"seed", opts.Seed, "win_tile", opts.Rules.WinTile)

	report, err := bench.Run(ctx, opts)
	if err != nil {
		logger.Error("benchmark stopped", "err", err, "finished", len(report.Games))
		if len(report.Games) > 0 {
			printReport(report)
		}
		stop()
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}

	printReport(report)

	if store != nil {
		if _, err := store.SaveBenchRun(report); err != nil {
			logger.Warn("could not save benchmark run", "err", err)
		}
	}
}

func printReport(r bench.Report) {
	fmt.Println()
	fmt.Printf("Games:     %d (depth %d, %d workers, seed %d)\n", len(r.Games), r.Depth, r.Workers, r.Seed)
	fmt.Printf("Wins:      %d (%.1f%%)\n", r.Wins, r.WinRate()*100)
	fmt.Printf("Avg score: %.0f\n", r.AverageScore())
	fmt.Printf("Duration:  %s\n", r.Duration.Round(time.Millisecond))

	tiles := r.MaxTiles()
	keys := make([]int, 0, len(tiles))
	for tile := range tiles {
		keys = append(keys, tile)
	}
	slices.Sort(keys)
	slices.Reverse(keys)

	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Max tile", "Games")
	fmt.Printf("  %-8s  %s\n", "--------", "-----")
	for _, tile := range keys {
		fmt.Printf("  %-8d  %d\n", tile, tiles[tile])
	}
}

func printBenchHistory(store *storage.Store, limit int) {
	runs, err := store.RecentBenchRuns(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		fmt.Println("No benchmark runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-5s  %-5s  %-7s  %-5s  %s\n", "Date", "Games", "Depth", "Workers", "Win %", "Duration")
	fmt.Printf("  %-16s  %-5s  %-5s  %-7s  %-5s  %s\n", "----", "-----", "-----", "-------", "-----", "--------")
	for _, run := range runs {
		fmt.Printf("  %-16s  %-5d  %-5d  %-7d  %-5.1f  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.Games, run.Depth, run.Workers, run.WinRate()*100,
			run.Duration.Round(time.Millisecond))
	}
}
