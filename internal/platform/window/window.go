// Package window hosts the game in a desktop window or a browser canvas
// using ebiten. ebiten owns the loop: its Update runs one fixed step at the
// game's tick rate and its Draw renders the canvas at native size.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/sound"
)

// keyBindings maps ebiten keys to game keys.
var keyBindings = map[ebiten.Key]core.Key{
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyA:          core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyD:          core.KeyRight,
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyP:          core.KeyP,
}

// Options configure the window host.
type Options struct {
	Title  string
	FPS    int // non-positive uses the game's configured rate
	Bank   *sound.Bank
	Logger *log.Logger
}

// Host implements ebiten.Game for one invaders game.
type Host struct {
	game    *invaders.Game
	driver  *invaders.Driver
	surface *ImageSurface
	bank    *sound.Bank
	log     *log.Logger

	started  bool
	touching bool
	touchID  ebiten.TouchID
	touchX   int
	touchBuf []ebiten.TouchID
}

// NewHost creates a host for g.
func NewHost(g *invaders.Game, opts Options) (*Host, error) {
	face, err := loadFace(fontSize)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	surface := NewImageSurface(face)
	return &Host{
		game:    g,
		driver:  invaders.NewDriver(g, surface, opts.FPS),
		surface: surface,
		bank:    opts.Bank,
		log:     logger,
	}, nil
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if !h.started {
		h.started = true
		h.game.Start()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && h.bank != nil {
		h.log.Debug("sound toggled", "muted", h.bank.ToggleMute())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		h.game.SetDebug(!h.game.Debug())
	}

	for ek, k := range keyBindings {
		if inpututil.IsKeyJustPressed(ek) {
			h.game.KeyDown(k)
		}
		if inpututil.IsKeyJustReleased(ek) {
			h.game.KeyUp(k)
		}
	}
	h.updateTouch()

	h.driver.Update()
	return nil
}

// updateTouch follows the first finger down until it is lifted.
func (h *Host) updateTouch() {
	if !h.touching {
		h.touchBuf = inpututil.AppendJustPressedTouchIDs(h.touchBuf[:0])
		if len(h.touchBuf) == 0 {
			return
		}
		h.touching = true
		h.touchID = h.touchBuf[0]
		h.touchX, _ = ebiten.TouchPosition(h.touchID)
		h.game.TouchStart(float64(h.touchX))
		return
	}

	if inpututil.IsTouchJustReleased(h.touchID) {
		h.touching = false
		h.game.TouchEnd()
		return
	}
	if x, _ := ebiten.TouchPosition(h.touchID); x != h.touchX {
		h.touchX = x
		h.game.TouchMove(float64(x))
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.SetTarget(screen)
	h.driver.Draw()
}

// Layout implements ebiten.Game. The logical screen is the game canvas.
func (h *Host) Layout(_, _ int) (int, int) {
	return int(h.game.Width()), int(h.game.Height())
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(g *invaders.Game, opts Options) error {
	host, err := NewHost(g, opts)
	if err != nil {
		return err
	}
	defer g.Stop()

	title := opts.Title
	if title == "" {
		title = "Space Invaders"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(g.Width()), int(g.Height()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(host.driver.FPS())

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
