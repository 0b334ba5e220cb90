// Package config provides YAML-based game configuration loading and
// per-level difficulty derivation for the invaders game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all tunables for the game. It is immutable once a game
// has been constructed from it.
type Config struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Ship       ShipConfig       `yaml:"ship"`
	Invaders   InvaderConfig    `yaml:"invaders"`
	Rockets    RocketConfig     `yaml:"rockets"`
	Bombs      BombConfig       `yaml:"bombs"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
	Debug      bool             `yaml:"debug"`
}

// ArenaConfig defines the playfield and the canvas it is centred in.
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Speed float64 `yaml:"speed"` // canvas units per second
	Lives int     `yaml:"lives"`
}

// InvaderConfig defines the invader formation.
type InvaderConfig struct {
	Ranks           int     `yaml:"ranks"`
	Files           int     `yaml:"files"`
	InitialVelocity float64 `yaml:"initial_velocity"`
	Acceleration    float64 `yaml:"acceleration"` // added to speed on each wall bounce
	DropDistance    float64 `yaml:"drop_distance"`
	Points          int     `yaml:"points"`
}

// RocketConfig defines the player's projectiles.
type RocketConfig struct {
	Velocity float64 `yaml:"velocity"`
	MaxFire  int     `yaml:"max_fire"` // concurrent rockets in flight
}

// BombConfig defines the invaders' projectiles.
type BombConfig struct {
	Rate        float64 `yaml:"rate"` // expected bombs per second per file
	MinVelocity float64 `yaml:"min_velocity"`
	MaxVelocity float64 `yaml:"max_velocity"`
}

// DifficultyConfig defines per-level scaling.
type DifficultyConfig struct {
	Multiplier         float64 `yaml:"multiplier"`
	LimitLevelIncrease int     `yaml:"limit_level_increase"` // level after which scaling stops
}

// TimingConfig defines the simulation rate and transition delays.
type TimingConfig struct {
	FPS             int     `yaml:"fps"`
	LevelIntroDelay float64 `yaml:"level_intro_delay"` // seconds
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every known preset in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Difficulty.Multiplier = 0.1
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Difficulty.Multiplier = 0.3
	case DifficultyFixed:
		cfg.Difficulty.Multiplier = 0
	}
}

// Validate checks every field and reports all offending ones at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(field string, value any, want string) {
		errs = append(errs, fmt.Errorf("%w: %s = %v, must be %s", ErrInvalidConfig, field, value, want))
	}
	positive := func(field string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			bad(field, v, "positive")
		}
	}
	nonNegative := func(field string, v float64) {
		if !(v >= 0) || math.IsInf(v, 0) {
			bad(field, v, "non-negative")
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("arena.canvas_width", c.Arena.CanvasWidth)
	positive("arena.canvas_height", c.Arena.CanvasHeight)
	if c.Arena.Width > c.Arena.CanvasWidth {
		bad("arena.width", c.Arena.Width, "at most canvas_width")
	}
	if c.Arena.Height > c.Arena.CanvasHeight {
		bad("arena.height", c.Arena.Height, "at most canvas_height")
	}

	nonNegative("ship.speed", c.Ship.Speed)
	if c.Ship.Lives < 1 {
		bad("ship.lives", c.Ship.Lives, "at least 1")
	}

	if c.Invaders.Ranks < 1 {
		bad("invaders.ranks", c.Invaders.Ranks, "at least 1")
	}
	if c.Invaders.Files < 1 {
		bad("invaders.files", c.Invaders.Files, "at least 1")
	}
	nonNegative("invaders.initial_velocity", c.Invaders.InitialVelocity)
	nonNegative("invaders.acceleration", c.Invaders.Acceleration)
	positive("invaders.drop_distance", c.Invaders.DropDistance)
	if c.Invaders.Points < 0 {
		bad("invaders.points", c.Invaders.Points, "non-negative")
	}

	positive("rockets.velocity", c.Rockets.Velocity)
	if c.Rockets.MaxFire < 1 {
		bad("rockets.max_fire", c.Rockets.MaxFire, "at least 1")
	}

	nonNegative("bombs.rate", c.Bombs.Rate)
	nonNegative("bombs.min_velocity", c.Bombs.MinVelocity)
	nonNegative("bombs.max_velocity", c.Bombs.MaxVelocity)
	if c.Bombs.MinVelocity > c.Bombs.MaxVelocity {
		bad("bombs.min_velocity", c.Bombs.MinVelocity, "at most max_velocity")
	}

	nonNegative("difficulty.multiplier", c.Difficulty.Multiplier)
	if c.Difficulty.LimitLevelIncrease < 1 {
		bad("difficulty.limit_level_increase", c.Difficulty.LimitLevelIncrease, "at least 1")
	}

	// The deepest formation must spawn above the arena floor.
	if c.Invaders.Ranks >= 1 && c.Difficulty.LimitLevelIncrease >= 1 && c.Arena.Height > 0 {
		if depth := float64(c.MaxRanks() * RankSpacing); depth >= c.Arena.Height {
			bad("invaders.ranks", c.Invaders.Ranks,
				fmt.Sprintf("small enough that %d rows at level %d fit in arena.height %v",
					c.MaxRanks(), c.Difficulty.LimitLevelIncrease, c.Arena.Height))
		}
	}

	if c.Timing.FPS < 1 {
		bad("timing.fps", c.Timing.FPS, "at least 1")
	}
	nonNegative("timing.level_intro_delay", c.Timing.LevelIntroDelay)

	return errors.Join(errs...)
}
