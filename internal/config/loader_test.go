package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded config = %+v\nexpected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ship:\n  lives: 7\ntiming:\n  fps: 30\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Ship.Lives != 7 || cfg.Timing.FPS != 30 {
		t.Errorf("overrides not applied: lives=%d fps=%d", cfg.Ship.Lives, cfg.Timing.FPS)
	}
	if cfg.Invaders.Points != 5 {
		t.Errorf("unset field Points = %d, expected default 5", cfg.Invaders.Points)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rockets:\n  max_fire: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}

	// Local configs directory.
	writeConfig(t, filepath.Join(work, "configs"), "ship:\n  lives: 4\n")
	cfg, _ = Load("")
	if cfg.Ship.Lives != 4 {
		t.Errorf("local config: lives = %d, expected 4", cfg.Ship.Lives)
	}

	// User config wins over local.
	writeConfig(t, filepath.Join(home, ".invaders", "configs"), "ship:\n  lives: 6\n")
	cfg, _ = Load("")
	if cfg.Ship.Lives != 6 {
		t.Errorf("user config: lives = %d, expected 6", cfg.Ship.Lives)
	}
}

func TestDebugFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv(EnvDebug, "true")
	on, err := DebugFromEnv()
	if err != nil || !on {
		t.Errorf("DebugFromEnv() = %v, %v, expected true", on, err)
	}

	t.Setenv(EnvDebug, "0")
	on, err = DebugFromEnv()
	if err != nil || on {
		t.Errorf("DebugFromEnv() = %v, %v, expected false", on, err)
	}

	t.Setenv(EnvDebug, "maybe")
	if _, err := DebugFromEnv(); err == nil {
		t.Error("DebugFromEnv should reject a non-boolean value")
	}
}

func TestDebugFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvDebug+"=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvDebug, "")
	os.Unsetenv(EnvDebug)

	on, err := DebugFromEnv()
	if err != nil || !on {
		t.Errorf("DebugFromEnv() = %v, %v, expected true from .env", on, err)
	}
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
