package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/window"
	"github.com/vovakirdan/tui-invaders/internal/sound"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window at canvas resolution.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire (also starts and restarts)
  P                - Pause
  M                - Toggle sound
  B                - Toggle arena bounds
  Q                - Quit

Touch screens move the ship with a dragged finger.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("invaders", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	bank := sound.NewBank(assets.FS, window.NewAudioBackend(), logger)
	bank.SetMuted(flagMute)

	g, err := invaders.New(cfg, gameOptions(logger, bank)...)
	if err != nil {
		return err
	}

	return window.Run(g, window.Options{
		FPS:    flagFPS,
		Bank:   bank,
		Logger: logger,
	})
}
