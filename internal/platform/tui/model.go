package tui

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// DefaultHoldWindow is how long a direction or fire key counts as held after
// its last key event. Terminals report no key release, only auto-repeat.
const DefaultHoldWindow = 550 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Muter toggles sound output.
type Muter interface {
	ToggleMute() bool
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game    *invaders.Game
	driver  *invaders.Driver
	screen  *core.Screen
	surface *ScreenSurface
	muter   Muter
	log     *log.Logger

	keys      KeyMap
	help      help.Model
	held      map[core.Key]int // ticks left before a synthesized key up
	holdTicks int

	quitting bool
}

// NewModel creates a model for g. The screen starts at cfg's size and
// follows the terminal afterwards; cfg.TickRate overrides the game's rate.
// muter may be nil when sound cannot be toggled.
func NewModel(g *invaders.Game, cfg core.RuntimeConfig, muter Muter, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg = cfg.WithDefaults()
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0))
	surface := NewScreenSurface(screen, ViewportFor(g))
	driver := invaders.NewDriver(g, surface, cfg.TickRate)

	return Model{
		game:      g,
		driver:    driver,
		screen:    screen,
		surface:   surface,
		muter:     muter,
		log:       logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		held:      make(map[core.Key]int),
		holdTicks: holdTicks(DefaultHoldWindow, driver.FPS()),
	}
}

func holdTicks(window time.Duration, fps int) int {
	return max(int(math.Ceil(window.Seconds()*float64(fps))), 1)
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Start()
	return tickCmd(m.driver.FPS())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.releaseExpired()
		m.driver.Tick()
		return m, tickCmd(m.driver.FPS())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Mute):
		if m.muter != nil {
			muted := m.muter.ToggleMute()
			m.log.Debug("sound toggled", "muted", muted)
		}
		return m, nil
	case key.Matches(msg, m.keys.Bounds):
		m.game.SetDebug(!m.game.Debug())
		return m, nil
	}

	k, ok := m.keys.GameKey(msg)
	if !ok {
		return m, nil
	}
	m.press(k)
	return m, nil
}

// press forwards a key down and schedules its release. Keys go straight to
// the game: Update already runs on the ticking goroutine.
func (m Model) press(k core.Key) {
	switch k {
	case core.KeyP, core.KeySpace:
		// Each press or auto-repeat is a tap of its own, so one press fires
		// one rocket and never stays held into the next state.
		m.game.KeyDown(k)
		m.game.KeyUp(k)
		return
	case core.KeyLeft:
		m.release(core.KeyRight)
	case core.KeyRight:
		m.release(core.KeyLeft)
	}

	if _, held := m.held[k]; !held {
		m.game.KeyDown(k)
	}
	m.held[k] = m.holdTicks
}

func (m Model) release(k core.Key) {
	if _, held := m.held[k]; !held {
		return
	}
	delete(m.held, k)
	m.game.KeyUp(k)
}

// releaseExpired counts down held keys and releases those whose window ran out.
func (m Model) releaseExpired() {
	for k, left := range m.held {
		if left <= 1 {
			m.release(k)
			continue
		}
		m.held[k] = left - 1
	}
}

// View renders the last drawn frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the hosted game.
func (m Model) Game() *invaders.Game {
	return m.game
}

// Run starts the Bubble Tea program for m and blocks until it quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
