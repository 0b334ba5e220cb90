package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestLevelRows(t *testing.T) {
	cfg := config.DefaultConfig()

	rows, err := LevelRows(cfg, 3)
	if err != nil {
		t.Fatalf("LevelRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, expected 3", len(rows))
	}
	for i, p := range rows {
		if p.Level != i+1 {
			t.Errorf("rows[%d].Level = %d, expected %d", i, p.Level, i+1)
		}
	}

	none, err := LevelRows(cfg, 0)
	if err != nil || len(none) != 0 {
		t.Errorf("LevelRows(0) = %v, %v, expected empty", none, err)
	}
}

func TestLevelRowFormat(t *testing.T) {
	p, err := config.DefaultConfig().Derive(1)
	if err != nil {
		t.Fatal(err)
	}

	row := levelRow(p)
	expected := []string{"1", "120", "32.5", "0.060", "60-60", "2", "5x10"}
	if len(row) != len(expected) {
		t.Fatalf("len(row) = %d, expected %d", len(row), len(expected))
	}
	for i := range expected {
		if row[i] != expected[i] {
			t.Errorf("row[%d] = %q, expected %q", i, row[i], expected[i])
		}
	}
}

func TestRenderLevelTable(t *testing.T) {
	rows, err := LevelRows(config.DefaultConfig(), 2)
	if err != nil {
		t.Fatal(err)
	}

	out := RenderLevelTable("Difficulty: normal", rows)
	for _, want := range []string{"Difficulty: normal", "Level", "Invader v", "5x10"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
