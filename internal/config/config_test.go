package config

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timing.FPS = 0
	cfg.Invaders.Files = 0
	cfg.Bombs.MinVelocity = 90
	cfg.Bombs.MaxVelocity = 10

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected error")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error %v does not wrap ErrInvalidConfig", err)
	}
	for _, field := range []string{"timing.fps", "invaders.files", "bombs.min_velocity"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ship.Speed = math.NaN()
	cfg.Rockets.Velocity = math.Inf(1)

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected error")
	}
	if !strings.Contains(err.Error(), "ship.speed") || !strings.Contains(err.Error(), "rockets.velocity") {
		t.Errorf("error %q missing non-finite fields", err)
	}
}

func TestValidateArenaFitsCanvas(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Arena.Width = 900

	if err := cfg.Validate(); err == nil {
		t.Error("arena wider than canvas should be rejected")
	}
}

func TestValidateFormationFitsArena(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		// 12 + 2 rows at the limit is exactly 280 units.
		{"just fits", func(c *Config) { c.Invaders.Ranks = 12; c.Arena.Height = 290 }, true},
		{"too many ranks", func(c *Config) { c.Invaders.Ranks = 13 }, false},
		{"growth past the floor", func(c *Config) { c.Difficulty.LimitLevelIncrease = 110 }, false},
		{"short arena", func(c *Config) { c.Arena.Height = 140 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Fatalf("Validate() = %v, expected ok = %v", err, tt.ok)
			}
			if err != nil && !strings.Contains(err.Error(), "invaders.ranks") {
				t.Errorf("error %q does not mention invaders.ranks", err)
			}
		})
	}
}

func TestMaxRanks(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.MaxRanks(); got != 7 {
		t.Errorf("MaxRanks() = %d, expected 7", got)
	}
	p, err := cfg.Derive(cfg.Difficulty.LimitLevelIncrease)
	if err != nil {
		t.Fatal(err)
	}
	if p.InvaderRanks != cfg.MaxRanks() {
		t.Errorf("ranks at the limit = %d, expected MaxRanks() = %d", p.InvaderRanks, cfg.MaxRanks())
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		lives      int
		multiplier float64
	}{
		{DifficultyEasy, 5, 0.1},
		{DifficultyNormal, 3, 0.2},
		{DifficultyHard, 2, 0.3},
		{DifficultyFixed, 3, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Ship.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Ship.Lives, tt.lives)
			}
			if cfg.Difficulty.Multiplier != tt.multiplier {
				t.Errorf("Multiplier = %v, expected %v", cfg.Difficulty.Multiplier, tt.multiplier)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}
