// invaders-web is the browser build of the game.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o invaders.wasm ./cmd/invaders-web
//
// Serve it with ebiten's wasm_exec.js loader. Opening the page with
// ?debug=true draws the arena bounds.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/window"
	"github.com/vovakirdan/tui-invaders/internal/sound"
)

func main() {
	// Output shows up in the browser console.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})

	// There is no filesystem in the browser; this resolves to the embedded defaults.
	cfg, err := config.Load("")
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}

	bank := sound.NewBank(assets.FS, window.NewAudioBackend(), logger)
	g, err := invaders.New(cfg,
		invaders.WithLogger(logger),
		invaders.WithSounds(bank),
		invaders.WithDebug(cfg.Debug || window.DebugFromURL()),
	)
	if err != nil {
		logger.Fatal("cannot create game", "err", err)
	}

	if err := window.Run(g, window.Options{Bank: bank, Logger: logger}); err != nil {
		logger.Fatal("game stopped", "err", err)
	}
}
