package invaders

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Driver runs a game at a fixed tick rate: every tick updates the current
// state by 1/fps seconds and then draws it.
//
// Input sent through the driver is queued and applied on the ticking
// goroutine, so it is safe to call KeyDown, KeyUp and the touch methods
// from other goroutines while Run is active. Hosts that call Update on their
// own goroutine send input to the Game directly instead; the queue blocks
// when full and only Update empties it.
type Driver struct {
	game    *Game
	surface Surface
	fps     int
	dt      float64
	events  chan func(*Game)
}

// NewDriver creates a driver. A non-positive fps uses the game's configured rate.
// surface may be nil for headless runs.
func NewDriver(g *Game, s Surface, fps int) *Driver {
	if fps <= 0 {
		fps = g.cfg.Timing.FPS
	}
	return &Driver{
		game:    g,
		surface: s,
		fps:     fps,
		dt:      1 / float64(fps),
		events:  make(chan func(*Game), 64),
	}
}

// Game returns the driven game.
func (d *Driver) Game() *Game { return d.game }

// FPS returns the tick rate.
func (d *Driver) FPS() int { return d.fps }

// Interval returns the wall-clock time between ticks.
func (d *Driver) Interval() time.Duration {
	return time.Second / time.Duration(d.fps)
}

// Update applies queued input and advances the game by one fixed step.
func (d *Driver) Update() {
	d.drain()
	d.game.Update(d.dt)
}

// Draw renders the game onto the surface, if there is one.
func (d *Driver) Draw() {
	if d.surface == nil {
		return
	}
	d.game.Draw(d.surface, d.dt)
}

// Tick runs one update followed by one draw.
func (d *Driver) Tick() {
	d.Update()
	d.Draw()
}

// Run starts the game and ticks until ctx is cancelled, then stops the game.
func (d *Driver) Run(ctx context.Context) error {
	d.game.Start()
	defer d.game.Stop()

	ticker := time.NewTicker(d.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Tick()
		}
	}
}

// KeyDown queues a key press.
func (d *Driver) KeyDown(k core.Key) {
	d.send(func(g *Game) { g.KeyDown(k) })
}

// KeyUp queues a key release.
func (d *Driver) KeyUp(k core.Key) {
	d.send(func(g *Game) { g.KeyUp(k) })
}

// TouchStart queues the start of a touch at canvas x.
func (d *Driver) TouchStart(x float64) {
	d.send(func(g *Game) { g.TouchStart(x) })
}

// TouchMove queues a touch movement to canvas x.
func (d *Driver) TouchMove(x float64) {
	d.send(func(g *Game) { g.TouchMove(x) })
}

// TouchEnd queues the end of a touch.
func (d *Driver) TouchEnd() {
	d.send(func(g *Game) { g.TouchEnd() })
}

// send blocks when the queue is full until the next tick drains it.
func (d *Driver) send(ev func(*Game)) {
	d.events <- ev
}

func (d *Driver) drain() {
	for {
		select {
		case ev := <-d.events:
			ev(d.game)
		default:
			return
		}
	}
}
