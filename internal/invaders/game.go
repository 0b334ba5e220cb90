// Package invaders implements the arcade shooter: a state machine of
// welcome, level intro, play, pause and game over screens driving a
// fixed-step simulation of the ship, the invader formation and their
// projectiles.
//
// A Game is not safe for concurrent use. Hosts call it from a single
// goroutine (or go through a Driver) and use Snapshot to share state.
package invaders

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sound names and the resources they are loaded from.
const (
	SoundShoot     = "shoot"
	SoundBang      = "bang"
	SoundExplosion = "explosion"
)

var soundNames = []string{SoundShoot, SoundBang, SoundExplosion}

// Sounds loads and plays named sound effects.
// Implementations must not block and must tolerate unknown names.
type Sounds interface {
	Load(name, resource string)
	Play(name string)
}

type nopSounds struct{}

func (nopSounds) Load(string, string) {}
func (nopSounds) Play(string)         {}

// Game is one play session.
type Game struct {
	cfg    config.Config
	bounds core.Box
	log    *log.Logger
	sounds Sounds
	rng    *rand.Rand
	seed   int64
	debug  bool

	keys   core.KeySet
	stack  []stackEntry
	nextID uint64

	score int
	lives int
	level int
	ticks uint64

	soundsLoaded bool
	touchX       float64
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithSounds sets the sound service. The default is silent.
func WithSounds(s Sounds) Option {
	return func(g *Game) {
		if s != nil {
			g.sounds = s
		}
	}
}

// WithSeed fixes the random seed used for bomb drops.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithDebug overrides the config's debug flag.
func WithDebug(on bool) Option {
	return func(g *Game) {
		g.debug = on
	}
}

// New creates a game from a configuration. The configuration is validated
// and copied; later changes to cfg do not affect the game.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		log:    log.New(io.Discard),
		sounds: nopSounds{},
		seed:   time.Now().UnixNano(),
		debug:  cfg.Debug,
		keys:   core.NewKeySet(),
		lives:  cfg.Ship.Lives,
		level:  1,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	g.bounds = core.CenteredBox(
		cfg.Arena.CanvasWidth/2, cfg.Arena.CanvasHeight/2,
		cfg.Arena.Width, cfg.Arena.Height,
	)
	return g, nil
}

// Start enters the welcome screen.
func (g *Game) Start() {
	g.log.Info("game started", "seed", g.seed)
	g.MoveToState(&WelcomeState{})
}

// Stop leaves every stacked state. The game can be started again.
// Stopping a game that is not running does nothing.
func (g *Game) Stop() {
	if len(g.stack) == 0 {
		return
	}
	for i := len(g.stack) - 1; i >= 0; i-- {
		leave(g, g.stack[i].state)
	}
	g.stack = nil
	g.keys.Clear()
	g.log.Info("game stopped", "score", g.score, "level", g.level, "ticks", g.ticks)
}

// Update advances the current state by dt seconds.
func (g *Game) Update(dt float64) {
	g.ticks++
	if u, ok := g.CurrentState().(Updater); ok {
		u.Update(g, dt)
	}
}

// Draw clears the surface and renders every stacked state bottom up,
// so a pushed state is drawn over the one it suspends.
func (g *Game) Draw(s Surface, dt float64) {
	s.Clear()
	for _, e := range g.stack {
		if d, ok := e.state.(Drawer); ok {
			d.Draw(g, s, dt)
		}
	}
	if g.debug {
		s.StrokeRect(g.bounds, core.ColorGray)
	}
}

// KeyDown records k as held and forwards it to the current state.
func (g *Game) KeyDown(k core.Key) {
	g.keys.Press(k)
	if h, ok := g.CurrentState().(KeyDowner); ok {
		h.KeyDown(g, k)
	}
}

// KeyUp records k as released and forwards it to the current state.
func (g *Game) KeyUp(k core.Key) {
	g.keys.Release(k)
	if h, ok := g.CurrentState().(KeyUpper); ok {
		h.KeyUp(g, k)
	}
}

// Held reports whether k is currently pressed.
func (g *Game) Held(k core.Key) bool {
	return g.keys.Held(k)
}

// TouchStart begins a touch at canvas x. It fires and starts tracking movement.
func (g *Game) TouchStart(x float64) {
	g.KeyDown(core.KeySpace)
	g.touchX = x
}

// TouchMove steers the ship towards the side the touch moved to.
func (g *Game) TouchMove(x float64) {
	switch {
	case x > g.touchX:
		g.KeyUp(core.KeyLeft)
		g.KeyDown(core.KeyRight)
	case x < g.touchX:
		g.KeyUp(core.KeyRight)
		g.KeyDown(core.KeyLeft)
	}
	g.touchX = x
}

// TouchEnd releases every key a touch may have pressed.
func (g *Game) TouchEnd() {
	g.KeyUp(core.KeyLeft)
	g.KeyUp(core.KeyRight)
	g.KeyUp(core.KeySpace)
}

// reset prepares a fresh run starting at level one.
func (g *Game) reset() {
	g.score = 0
	g.lives = g.cfg.Ship.Lives
	g.level = 1
}

func (g *Game) loadSounds() {
	if g.soundsLoaded {
		return
	}
	g.soundsLoaded = true
	for _, name := range soundNames {
		g.sounds.Load(name, "sounds/"+name+".wav")
	}
}

func (g *Game) play(name string) {
	g.sounds.Play(name)
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.level }

// Ticks returns the number of updates since the game was created.
func (g *Game) Ticks() uint64 { return g.ticks }

// Bounds returns the arena in canvas coordinates.
func (g *Game) Bounds() core.Box { return g.bounds }

// Width returns the canvas width.
func (g *Game) Width() float64 { return g.cfg.Arena.CanvasWidth }

// Height returns the canvas height.
func (g *Game) Height() float64 { return g.cfg.Arena.CanvasHeight }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config { return g.cfg }

// Debug reports whether debug rendering is enabled.
func (g *Game) Debug() bool { return g.debug }

// SetDebug toggles debug rendering.
func (g *Game) SetDebug(on bool) { g.debug = on }
