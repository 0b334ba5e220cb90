package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// GameOverState shows the final result. Space starts a new run.
type GameOverState struct{}

func (*GameOverState) Name() string { return StateGameOver }

func (*GameOverState) Enter(g *Game) {
	g.log.Info("game over", "score", g.score, "level", g.level)
}

func (*GameOverState) KeyDown(g *Game, k core.Key) {
	if k != core.KeySpace {
		return
	}
	g.reset()
	g.MoveToState(NewLevelIntroState(g.level))
}

func (*GameOverState) Draw(g *Game, s Surface, _ float64) {
	drawLines(g, s,
		line{"Game Over!", colorTitle},
		line{fmt.Sprintf("You scored %d and got to level %d", g.score, g.level), colorText},
		line{"Press 'Space' to play again.", colorHint},
	)
}
