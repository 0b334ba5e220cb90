package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/sound"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Up/W   - Fire (also starts and restarts)
  P/Esc        - Pause
  M            - Toggle sound
  B            - Toggle arena bounds
  Q/Ctrl+C     - Quit

Sounds are played as terminal bells.

Difficulty options:
  easy   - More lives, gentler scaling
  normal - Config defaults
  hard   - Fewer lives, steeper scaling
  fixed  - No scaling between levels

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invaders.yaml --log-file invaders.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to --log-file.
	logger, closeLog, err := openLogger("invaders", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	bank := sound.NewBank(assets.FS, sound.NewBell(os.Stderr), logger)
	bank.SetMuted(flagMute)

	g, err := invaders.New(cfg, gameOptions(logger, bank)...)
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	return tui.Run(tui.NewModel(g, rc, bank, logger))
}
