package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// State is one node of the game's state machine.
// Behaviour is added by implementing any of the hook interfaces below;
// a missing hook is a no-op.
type State interface {
	Name() string
}

// Enterer is called when the state becomes active.
type Enterer interface {
	Enter(g *Game)
}

// Leaver is called when the state is removed from the stack.
type Leaver interface {
	Leave(g *Game)
}

// Updater advances the state by dt seconds.
type Updater interface {
	Update(g *Game, dt float64)
}

// Drawer renders the state onto a surface.
type Drawer interface {
	Draw(g *Game, s Surface, dt float64)
}

// KeyDowner receives key presses while the state is on top.
type KeyDowner interface {
	KeyDown(g *Game, k core.Key)
}

// KeyUpper receives key releases while the state is on top.
type KeyUpper interface {
	KeyUp(g *Game, k core.Key)
}

// State names.
const (
	StateWelcome    = "welcome"
	StateLevelIntro = "level_intro"
	StatePlay       = "play"
	StatePause      = "pause"
	StateGameOver   = "game_over"
)

type stackEntry struct {
	state State
	id    uint64
}

func enter(g *Game, s State) {
	if e, ok := s.(Enterer); ok {
		e.Enter(g)
	}
}

func leave(g *Game, s State) {
	if l, ok := s.(Leaver); ok {
		l.Leave(g)
	}
}

// MoveToState leaves every stacked state top first, then enters next,
// which becomes the only entry on the stack.
func (g *Game) MoveToState(next State) {
	for i := len(g.stack) - 1; i >= 0; i-- {
		leave(g, g.stack[i].state)
	}
	g.log.Debug("state change", "to", next.Name(), "level", g.level)
	g.stack = []stackEntry{g.newEntry(next)}
	enter(g, next)
}

// PushState enters next and stacks it over the current state, which stays
// frozen underneath. The returned function pops next again and is the only
// way to do so; it is a no-op once next is no longer on top.
func (g *Game) PushState(next State) (pop func()) {
	entry := g.newEntry(next)
	g.stack = append(g.stack, entry)
	enter(g, next)

	return func() {
		n := len(g.stack)
		if n == 0 || g.stack[n-1].id != entry.id {
			return
		}
		g.stack = g.stack[:n-1]
		leave(g, next)
	}
}

// CurrentState returns the state on top of the stack, or nil before Start.
func (g *Game) CurrentState() State {
	if len(g.stack) == 0 {
		return nil
	}
	return g.stack[len(g.stack)-1].state
}

func (g *Game) newEntry(s State) stackEntry {
	g.nextID++
	return stackEntry{state: s, id: g.nextID}
}
