package config

import (
	"fmt"
	"math"
)

// RankSpacing is the vertical distance between invader rows at level start.
const RankSpacing = 20

// Per-level growth of the integer parameters, applied up to the scaling limit.
const (
	rocketGrowth = 0.4
	rankGrowth   = 0.1
	fileGrowth   = 0.2
)

// levelSteps returns how many whole steps a parameter growing by f per
// level has gained at level (already capped).
func levelSteps(f float64, level int) int {
	return int(math.Floor(f * float64(level)))
}

// MaxRanks returns the most invader rows any level can have.
func (c Config) MaxRanks() int {
	return c.Invaders.Ranks + levelSteps(rankGrowth, c.Difficulty.LimitLevelIncrease)
}

// LevelParams are the effective gameplay parameters for one level.
type LevelParams struct {
	Level                  int
	ShipSpeed              float64
	InvaderInitialVelocity float64
	BombRate               float64
	BombMinVelocity        float64
	BombMaxVelocity        float64
	RocketMaxFire          int
	InvaderRanks           int
	InvaderFiles           int
}

// Derive computes the parameters for a level. Scaling grows linearly with the
// level until difficulty.limit_level_increase and stays constant afterwards.
func (c Config) Derive(level int) (LevelParams, error) {
	if level < 1 {
		return LevelParams{}, fmt.Errorf("config: derive level %d: level must be at least 1", level)
	}

	capped := min(level, c.Difficulty.LimitLevelIncrease)
	scale := float64(capped) * c.Difficulty.Multiplier

	return LevelParams{
		Level:                  level,
		ShipSpeed:              c.Ship.Speed,
		InvaderInitialVelocity: c.Invaders.InitialVelocity + 1.5*scale*c.Invaders.InitialVelocity,
		BombRate:               c.Bombs.Rate * (1 + scale),
		BombMinVelocity:        c.Bombs.MinVelocity * (1 + scale),
		BombMaxVelocity:        c.Bombs.MaxVelocity * (1 + scale),
		RocketMaxFire:          c.Rockets.MaxFire + levelSteps(rocketGrowth, capped),
		InvaderRanks:           c.Invaders.Ranks + levelSteps(rankGrowth, capped),
		InvaderFiles:           c.Invaders.Files + levelSteps(fileGrowth, capped),
	}, nil
}
