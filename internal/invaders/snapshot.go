package invaders

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Snapshot captures the game state for determinism testing and for
// readers on other goroutines. Slices are copies.
type Snapshot struct {
	Tick  uint64
	State string // name of the state on top of the stack
	Score int
	Lives int
	Level int

	// Play fields; zero outside of a level.
	Ship     core.Vec
	Invaders []Invader
	Rockets  []Rocket
	Bombs    []Bomb
	Velocity core.Vec
	Speed    float64
	Dropping bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.ticks,
		Score: g.score,
		Lives: g.lives,
		Level: g.level,
	}
	if s := g.CurrentState(); s != nil {
		snap.State = s.Name()
	}

	if p := g.playState(); p != nil {
		snap.Ship = p.ship.Pos
		snap.Invaders = slices.Clone(p.invaders)
		snap.Rockets = slices.Clone(p.rockets)
		snap.Bombs = slices.Clone(p.bombs)
		snap.Velocity = p.velocity
		snap.Speed = p.speed
		snap.Dropping = p.dropping
	}
	return snap
}

// playState returns the play state anywhere on the stack, so a paused
// level is still visible.
func (g *Game) playState() *PlayState {
	for i := len(g.stack) - 1; i >= 0; i-- {
		if p, ok := g.stack[i].state.(*PlayState); ok {
			return p
		}
	}
	return nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation

	h = hashVec(h, snap.Ship)
	h = hashVec(h, snap.Velocity)
	h = h*31 + math.Float64bits(snap.Speed)
	if snap.Dropping {
		h = h*31 + 1
	}

	for _, inv := range snap.Invaders {
		h = hashVec(h, inv.Pos)
		h = h*31 + uint64(inv.Rank) //#nosec G115 -- hash computation
		h = h*31 + uint64(inv.File) //#nosec G115 -- hash computation
	}
	for _, r := range snap.Rockets {
		h = hashVec(h, r.Pos)
	}
	for _, b := range snap.Bombs {
		h = hashVec(h, b.Pos)
		h = h*31 + math.Float64bits(b.Velocity)
	}
	return h
}

func hashVec(h uint64, v core.Vec) uint64 {
	h = h*31 + math.Float64bits(v.X)
	return h*31 + math.Float64bits(v.Y)
}
