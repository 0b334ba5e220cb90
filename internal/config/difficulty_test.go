package config

import "testing"

func TestDeriveLevelOne(t *testing.T) {
	cfg := DefaultConfig()
	p, err := cfg.Derive(1)
	if err != nil {
		t.Fatalf("Derive(1) error: %v", err)
	}

	// scale = 1 * 0.2
	if got, expected := p.InvaderInitialVelocity, 25+1.5*0.2*25; !approx(got, expected) {
		t.Errorf("InvaderInitialVelocity = %v, expected %v", got, expected)
	}
	if got, expected := p.BombRate, 0.05*1.2; !approx(got, expected) {
		t.Errorf("BombRate = %v, expected %v", got, expected)
	}
	if got, expected := p.BombMinVelocity, 60.0; !approx(got, expected) {
		t.Errorf("BombMinVelocity = %v, expected %v", got, expected)
	}
	if p.RocketMaxFire != 2 {
		t.Errorf("RocketMaxFire = %d, expected 2", p.RocketMaxFire)
	}
	if p.InvaderRanks != 5 || p.InvaderFiles != 10 {
		t.Errorf("formation = %dx%d, expected 5x10", p.InvaderRanks, p.InvaderFiles)
	}
	if p.ShipSpeed != 120 {
		t.Errorf("ShipSpeed = %v, expected 120", p.ShipSpeed)
	}
}

func TestDeriveIntegerSteps(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		level                 int
		maxFire, ranks, files int
	}{
		{1, 2, 5, 10},
		{3, 3, 5, 10},
		{5, 4, 5, 11},
		{10, 6, 6, 12},
		{25, 12, 7, 15},
		{100, 12, 7, 15},
	}

	for _, tt := range tests {
		p, err := cfg.Derive(tt.level)
		if err != nil {
			t.Fatalf("Derive(%d) error: %v", tt.level, err)
		}
		if p.RocketMaxFire != tt.maxFire {
			t.Errorf("level %d: RocketMaxFire = %d, expected %d", tt.level, p.RocketMaxFire, tt.maxFire)
		}
		if p.InvaderRanks != tt.ranks {
			t.Errorf("level %d: InvaderRanks = %d, expected %d", tt.level, p.InvaderRanks, tt.ranks)
		}
		if p.InvaderFiles != tt.files {
			t.Errorf("level %d: InvaderFiles = %d, expected %d", tt.level, p.InvaderFiles, tt.files)
		}
	}
}

func TestDeriveMonotonicThenSaturates(t *testing.T) {
	cfg := DefaultConfig()
	limit := cfg.Difficulty.LimitLevelIncrease

	prev, _ := cfg.Derive(1)
	for level := 2; level <= limit; level++ {
		p, err := cfg.Derive(level)
		if err != nil {
			t.Fatalf("Derive(%d) error: %v", level, err)
		}
		if p.InvaderInitialVelocity <= prev.InvaderInitialVelocity {
			t.Errorf("level %d velocity %v not greater than level %d velocity %v",
				level, p.InvaderInitialVelocity, level-1, prev.InvaderInitialVelocity)
		}
		prev = p
	}

	for level := limit + 1; level <= limit+10; level++ {
		p, _ := cfg.Derive(level)
		if p.InvaderInitialVelocity != prev.InvaderInitialVelocity {
			t.Errorf("level %d velocity = %v, expected saturated %v", level, p.InvaderInitialVelocity, prev.InvaderInitialVelocity)
		}
		if p.BombRate != prev.BombRate || p.RocketMaxFire != prev.RocketMaxFire {
			t.Errorf("level %d parameters changed past saturation", level)
		}
	}
}

func TestDeriveFixedPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)

	p1, _ := cfg.Derive(1)
	p9, _ := cfg.Derive(9)
	if p1.InvaderInitialVelocity != p9.InvaderInitialVelocity {
		t.Errorf("fixed preset velocity changed: %v -> %v", p1.InvaderInitialVelocity, p9.InvaderInitialVelocity)
	}
	if p1.InvaderInitialVelocity != cfg.Invaders.InitialVelocity {
		t.Errorf("fixed preset velocity = %v, expected base %v", p1.InvaderInitialVelocity, cfg.Invaders.InitialVelocity)
	}
}

func TestDeriveRejectsLevelBelowOne(t *testing.T) {
	cfg := DefaultConfig()
	for _, level := range []int{0, -1} {
		if _, err := cfg.Derive(level); err == nil {
			t.Errorf("Derive(%d) should fail", level)
		}
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
