package invaders

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

const dt = 1.0 / 50

// newTestGame builds a game with no intro delay and no bombs unless mutate says otherwise.
func newTestGame(t *testing.T, mutate func(*config.Config), opts ...Option) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Timing.LevelIntroDelay = 0
	cfg.Bombs.Rate = 0
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(cfg, append([]Option{WithSeed(1)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

// startPlay starts the game and advances it into the first level.
func startPlay(t *testing.T, g *Game) *PlayState {
	t.Helper()
	g.Start()
	g.KeyDown(core.KeySpace)
	g.KeyUp(core.KeySpace)
	g.Update(dt)
	p, ok := g.CurrentState().(*PlayState)
	if !ok {
		t.Fatalf("CurrentState() = %v, expected play", g.CurrentState())
	}
	return p
}

func stateName(g *Game) string {
	if s := g.CurrentState(); s != nil {
		return s.Name()
	}
	return "<none>"
}

type recordSounds struct {
	loaded []string
	played []string
}

func (r *recordSounds) Load(name, resource string) {
	r.loaded = append(r.loaded, name+"="+resource)
}

func (r *recordSounds) Play(name string) {
	r.played = append(r.played, name)
}

func (r *recordSounds) count(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

type recordSurface struct {
	clears  int
	fills   []core.Box
	strokes []core.Box
	texts   []string
}

func (r *recordSurface) Clear() {
	r.clears++
	r.fills = nil
	r.strokes = nil
	r.texts = nil
}

func (r *recordSurface) FillRect(b core.Box, _ core.Color) {
	r.fills = append(r.fills, b)
}

func (r *recordSurface) StrokeRect(b core.Box, _ core.Color) {
	r.strokes = append(r.strokes, b)
}

func (r *recordSurface) Text(_, _ float64, s string, _ core.Color, _ Align) {
	r.texts = append(r.texts, s)
}

func (r *recordSurface) hasText(s string) bool {
	for _, t := range r.texts {
		if t == s {
			return true
		}
	}
	return false
}

// traceState records every hook call into a shared log.
type traceState struct {
	name string
	log  *[]string
}

func (s *traceState) Name() string { return s.name }

func (s *traceState) Enter(*Game) { *s.log = append(*s.log, "enter "+s.name) }

func (s *traceState) Leave(*Game) { *s.log = append(*s.log, "leave "+s.name) }

func (s *traceState) KeyDown(_ *Game, k core.Key) {
	*s.log = append(*s.log, fmt.Sprintf("down %s", k))
}

func (s *traceState) KeyUp(_ *Game, k core.Key) {
	*s.log = append(*s.log, fmt.Sprintf("up %s", k))
}

// bareState implements no hooks at all.
type bareState struct{}

func (bareState) Name() string { return "bare" }

func nan() float64 {
	zero := 0.0
	return zero / zero
}
