// invaders is a Space Invaders clone for the terminal, the desktop and SSH.
//
// Usage:
//
//	invaders play      - Play in this terminal
//	invaders window    - Play in a desktop window
//	invaders serve     - Start SSH server for remote play
//	invaders demo      - Run a headless autopilot game
//	invaders levels    - Show the difficulty curve
//	invaders config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Tick rate (default: from config)
//	--seed <value>         - RNG seed for reproducible gameplay
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--debug                - Draw arena bounds
//	--mute                 - Start with sound off
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
	flagMute       bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Shoot down every invader before the formation reaches the ground.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  demo     - Run a headless autopilot game
  levels   - Show the difficulty curve
  config   - Print the effective configuration

Examples:
  invaders play
  invaders play --difficulty hard
  invaders window --debug
  invaders serve --ssh :2222
  invaders levels --max-level 30`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = timing.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw arena bounds (also "+config.EnvDebug+")")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the difficulty preset and
// debug switches from the flags and the environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	envDebug, err := config.DebugFromEnv()
	if err != nil {
		return cfg, err
	}
	cfg.Debug = cfg.Debug || flagDebug || envDebug

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// gameOptions returns the options shared by every host.
func gameOptions(logger *log.Logger, sounds invaders.Sounds) []invaders.Option {
	opts := []invaders.Option{
		invaders.WithLogger(logger),
		invaders.WithSounds(sounds),
	}
	if flagSeed != 0 {
		opts = append(opts, invaders.WithSeed(flagSeed))
	}
	return opts
}

// openLogger returns a logger writing to --log-file, or to fallback when no
// file is given. The returned func closes the file.
func openLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
