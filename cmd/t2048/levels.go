package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level presets",
	Long: `List the level presets with their target tile and the chance that a new
tile is a 4.

Examples:
  t2048 levels
  t2048 play --level 3`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	fmt.Println("Levels:")
	fmt.Println()

	for _, lvl := range t2048.Levels {
		marker := " "
		if lvl.ID == t2048.ClassicLevel {
			marker = "*"
		}
		fmt.Printf(" %s %2d  %-18s  target %-5d  4s %2.0f%%\n", marker, lvl.ID, lvl.Name, lvl.Target, lvl.Spawn4*100)
	}

	fmt.Println()
	fmt.Println("* default. Use 't2048 play --level <n>' to pick one, or --endless to play without a target.")
}
