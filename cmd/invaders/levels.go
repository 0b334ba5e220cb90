package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagMaxLevel int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty curve",
	Long: `Print the derived parameters for each level under the effective config.

Scaling stops at difficulty.limit_level_increase; later levels repeat it.

Examples:
  invaders levels
  invaders levels --difficulty hard --max-level 40`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagMaxLevel, "max-level", 0, "Last level to show (0 = one past the scaling limit)")
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	maxLevel := flagMaxLevel
	if maxLevel <= 0 {
		maxLevel = cfg.Difficulty.LimitLevelIncrease + 1
	}

	rows, err := tui.LevelRows(cfg, maxLevel)
	if err != nil {
		return err
	}

	preset := flagDifficulty
	if preset == "" {
		preset = string(config.DifficultyNormal)
	}
	fmt.Fprintln(os.Stdout, tui.RenderLevelTable("Difficulty: "+preset, rows))
	return nil
}
