package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Entity dimensions in canvas units.
const (
	ShipWidth     = 20
	ShipHeight    = 16
	InvaderWidth  = 18
	InvaderHeight = 14
	RocketWidth   = 1
	RocketHeight  = 6
	BombWidth     = 4
	BombHeight    = 4

	RankSpacing = config.RankSpacing
)

// Ship is the player's cannon. Pos is its centre.
type Ship struct {
	Pos core.Vec
}

// Box returns the ship's collision box.
func (s Ship) Box() core.Box {
	return core.CenteredBox(s.Pos.X, s.Pos.Y, ShipWidth, ShipHeight)
}

// Nose returns the point rockets are launched from.
func (s Ship) Nose() core.Vec {
	return core.Vec{X: s.Pos.X, Y: s.Pos.Y - ShipHeight/2}
}

// Invader is one member of the formation.
type Invader struct {
	Pos  core.Vec
	Rank int // row, 0 is the back row
	File int // column
}

// Box returns the invader's collision box.
func (i Invader) Box() core.Box {
	return core.CenteredBox(i.Pos.X, i.Pos.Y, InvaderWidth, InvaderHeight)
}

// Rocket is a player projectile. Velocity is negative (upwards).
type Rocket struct {
	Pos      core.Vec
	Velocity float64
}

// Bomb is an invader projectile. Velocity is positive (downwards).
type Bomb struct {
	Pos      core.Vec
	Velocity float64
}
