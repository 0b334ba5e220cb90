package invaders

import (
	"fmt"
	"math"
)

// LevelIntroState announces a level and counts down before play starts.
type LevelIntroState struct {
	level     int
	remaining float64
}

// NewLevelIntroState creates the intro for a level.
func NewLevelIntroState(level int) *LevelIntroState {
	return &LevelIntroState{level: level}
}

func (*LevelIntroState) Name() string { return StateLevelIntro }

func (s *LevelIntroState) Enter(g *Game) {
	s.remaining = g.cfg.Timing.LevelIntroDelay
}

func (s *LevelIntroState) Update(g *Game, dt float64) {
	s.remaining -= dt
	if s.remaining <= 0 {
		g.MoveToState(NewPlayState(s.level))
	}
}

func (s *LevelIntroState) Draw(g *Game, sf Surface, _ float64) {
	drawLines(g, sf,
		line{fmt.Sprintf("Level %d", s.level), colorTitle},
		line{fmt.Sprintf("Ready in %d", s.Countdown()), colorText},
	)
}

// Level returns the level being introduced.
func (s *LevelIntroState) Level() int { return s.level }

// Countdown returns the whole seconds left before play, rounded up.
func (s *LevelIntroState) Countdown() int {
	return int(math.Max(0, math.Ceil(s.remaining)))
}
