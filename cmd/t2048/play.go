package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var (
	flagLevel    int
	flagDepth    int
	flagAutoplay bool
	flagEndless  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD  - Slide tiles
  H            - Ask the solver for a hint
  Space        - Toggle autoplay (the solver plays its hints)
  P            - Pause
  R            - Restart (after the game ends)
  Esc          - Leave (when paused or over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer 4s spawn, deeper hints
  normal - Classic odds of a 4
  hard   - More 4s, shallower hints
  fixed  - Use the config as is

Examples:
  t2048 play
  t2048 play --level 7
  t2048 play --endless --difficulty hard
  t2048 play --autoplay --depth 5 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, fmt.Sprintf("Level preset 1-%d (default from config)", t2048.LevelCount()))
	playCmd.Flags().IntVar(&flagDepth, "depth", 0, "Hint search depth (default from config)")
	playCmd.Flags().BoolVar(&flagAutoplay, "autoplay", false, "Let the solver play from the start")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Keep playing past the win tile")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustSettings()

	if flagLevel != 0 && t2048.GetLevel(flagLevel-1) == nil {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", t2048.LevelCount())
		names, targets := t2048.LevelNames(), t2048.LevelTargets()
		for i, name := range names {
			fmt.Fprintf(os.Stderr, "  %2d  %-18s  target %d\n", i+1, name, targets[i])
		}
		os.Exit(1)
	}
	if flagDepth > 0 {
		cfg.Solver.Depth = flagDepth
	}

	defaults := tui.GameDefaults{Game: cfg.Game, Solver: cfg.Solver}
	g := defaults.NewGame(tui.MenuSelection{
		Level:    flagLevel,
		Endless:  flagEndless,
		Autoplay: flagAutoplay,
	})

	store := openStore(cfg.Storage.DBPath)

	_, runErr := tui.Run(g, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
