package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:        400,
			Height:       300,
			CanvasWidth:  800,
			CanvasHeight: 600,
		},
		Ship: ShipConfig{
			Speed: 120,
			Lives: 3,
		},
		Invaders: InvaderConfig{
			Ranks:           5,
			Files:           10,
			InitialVelocity: 25,
			Acceleration:    0,
			DropDistance:    20,
			Points:          5,
		},
		Rockets: RocketConfig{
			Velocity: 120,
			MaxFire:  2,
		},
		Bombs: BombConfig{
			Rate:        0.05,
			MinVelocity: 50,
			MaxVelocity: 50,
		},
		Difficulty: DifficultyConfig{
			Multiplier:         0.2,
			LimitLevelIncrease: 25,
		},
		Timing: TimingConfig{
			FPS:             50,
			LevelIntroDelay: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
