package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

type countingMuter struct {
	muted   bool
	toggles int
}

func (c *countingMuter) ToggleMute() bool {
	c.toggles++
	c.muted = !c.muted
	return c.muted
}

func newTestModel(t *testing.T) (Model, *invaders.Game) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Timing.LevelIntroDelay = 0
	cfg.Bombs.Rate = 0
	cfg.Invaders.InitialVelocity = 0
	g, err := invaders.New(cfg, invaders.WithSeed(1))
	if err != nil {
		t.Fatalf("invaders.New() error: %v", err)
	}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 50}, &countingMuter{}, nil)
	m.Init()
	return m, g
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model, n int) Model {
	for range n {
		m = send(m, TickMsg(time.Now()))
	}
	return m
}

func TestModelStartsGameOnSpace(t *testing.T) {
	m, g := newTestModel(t)
	if g.CurrentState().Name() != invaders.StateWelcome {
		t.Fatalf("state = %s, expected welcome", g.CurrentState().Name())
	}

	m = send(m, runeKey(' '))
	m = tick(m, 1)

	if g.CurrentState().Name() != invaders.StatePlay {
		t.Errorf("state = %s, expected play", g.CurrentState().Name())
	}
	if !strings.Contains(m.View(), "Lives: 3") {
		t.Error("view does not show the HUD")
	}
}

func TestModelSpaceTapFiresOnce(t *testing.T) {
	m, g := newTestModel(t)
	m = send(m, runeKey(' '))
	m = tick(m, 1)
	if g.Held(core.KeySpace) {
		t.Fatal("start press should not stay held into play")
	}
	if n := len(g.Snapshot().Rockets); n != 0 {
		t.Fatalf("rockets after start = %d, expected 0", n)
	}

	m = send(m, runeKey(' '))
	m = tick(m, 5)

	if n := len(g.Snapshot().Rockets); n != 1 {
		t.Errorf("rockets after one tap = %d, expected 1", n)
	}
}

func TestModelKeyBurstWithoutTick(t *testing.T) {
	m, g := newTestModel(t)
	m = send(m, runeKey(' '))
	m = tick(m, 1)

	for range 200 {
		m = send(m, runeKey(' '))
		m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	m = tick(m, 1)

	if g.CurrentState().Name() != invaders.StatePlay {
		t.Errorf("state = %s, expected play", g.CurrentState().Name())
	}
	if n := len(g.Snapshot().Rockets); n != 1 {
		t.Errorf("rockets = %d, expected 1", n)
	}
}

func TestModelSynthesizesKeyUp(t *testing.T) {
	m, g := newTestModel(t)
	m = send(m, runeKey(' '))
	m = tick(m, 1)

	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m, 1)
	if !g.Held(core.KeyLeft) {
		t.Fatal("Left should be held after a key press")
	}

	m = tick(m, m.holdTicks-2)
	if !g.Held(core.KeyLeft) {
		t.Fatal("Left released before the hold window ended")
	}
	m = tick(m, 1)
	if g.Held(core.KeyLeft) {
		t.Error("Left still held after the hold window")
	}
}

func TestModelRepeatExtendsHold(t *testing.T) {
	m, g := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(m, m.holdTicks-1)
	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(m, m.holdTicks-1)

	if !g.Held(core.KeyRight) {
		t.Error("auto-repeat should keep Right held")
	}
}

func TestModelOppositeDirectionReleases(t *testing.T) {
	m, g := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m, 1)
	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(m, 1)

	if g.Held(core.KeyLeft) || !g.Held(core.KeyRight) {
		t.Errorf("held left/right = %v/%v, expected false/true", g.Held(core.KeyLeft), g.Held(core.KeyRight))
	}
}

func TestModelMuteAndBounds(t *testing.T) {
	m, g := newTestModel(t)
	muter := m.muter.(*countingMuter)

	m = send(m, runeKey('m'))
	m = send(m, runeKey('b'))

	if muter.toggles != 1 || !muter.muted {
		t.Errorf("mute toggles = %d muted = %v, expected 1/true", muter.toggles, muter.muted)
	}
	if !g.Debug() {
		t.Error("b should enable bounds rendering")
	}
}

func TestModelQuit(t *testing.T) {
	m, g := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	if g.CurrentState() != nil {
		t.Error("game should be stopped after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestHoldTicks(t *testing.T) {
	if got := holdTicks(550*time.Millisecond, 50); got != 28 {
		t.Errorf("holdTicks = %d, expected 28", got)
	}
	if got := holdTicks(0, 50); got != 1 {
		t.Errorf("holdTicks(0) = %d, expected 1", got)
	}
}
