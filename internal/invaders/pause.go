package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// PauseState is pushed over play. P or Space resumes.
type PauseState struct {
	resume func()
}

func (*PauseState) Name() string { return StatePause }

func (p *PauseState) KeyDown(_ *Game, k core.Key) {
	if k == core.KeyP || k == core.KeySpace {
		if p.resume != nil {
			p.resume()
		}
	}
}

func (*PauseState) Draw(g *Game, s Surface, _ float64) {
	drawLines(g, s,
		line{"Paused", colorTitle},
		line{"Press 'P' to resume.", colorHint},
	)
}
