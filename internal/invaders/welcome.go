package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// WelcomeState is the title screen. Space starts a new run.
type WelcomeState struct{}

func (*WelcomeState) Name() string { return StateWelcome }

// Enter loads the sound effects the first time the game shows its title.
func (*WelcomeState) Enter(g *Game) {
	g.loadSounds()
}

func (*WelcomeState) KeyDown(g *Game, k core.Key) {
	if k != core.KeySpace {
		return
	}
	g.reset()
	g.MoveToState(NewLevelIntroState(g.level))
}

func (*WelcomeState) Draw(g *Game, s Surface, _ float64) {
	drawLines(g, s,
		line{"Space Invaders", colorTitle},
		line{"", colorText},
		line{"Press 'Space' or touch to start.", colorText},
		line{"Left/Right to move, Space to fire, P to pause.", colorHint},
	)
}
