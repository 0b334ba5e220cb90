package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Align selects how Surface.Text positions a string relative to x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the render target. Coordinates are canvas units; the host
// scales them to its own pixels or cells.
type Surface interface {
	Clear()
	FillRect(b core.Box, c core.Color)
	StrokeRect(b core.Box, c core.Color)
	Text(x, y float64, s string, c core.Color, a Align)
}

// Colors used for game elements.
const (
	colorShip    = core.ColorBrightGreen
	colorInvader = core.ColorGreen
	colorRocket  = core.ColorRed
	colorBomb    = core.ColorBrightRed
	colorText    = core.ColorWhite
	colorTitle   = core.ColorBrightYellow
	colorHint    = core.ColorGray
)

// Line height used to stack centred messages.
const lineHeight = 20

// drawHUD renders lives, score and level above the arena.
func drawHUD(g *Game, s Surface) {
	b := g.Bounds()
	y := b.Top - lineHeight
	s.Text(b.Left, y, fmt.Sprintf("Lives: %d", g.lives), colorText, AlignLeft)
	s.Text(b.Center().X, y, fmt.Sprintf("Level: %d", g.level), colorText, AlignCenter)
	s.Text(b.Right, y, fmt.Sprintf("Score: %d", g.score), colorText, AlignRight)
}

// drawLines renders centred lines around the middle of the canvas.
func drawLines(g *Game, s Surface, lines ...line) {
	cx, cy := g.Width()/2, g.Height()/2
	top := cy - float64(len(lines)-1)*lineHeight/2
	for i, l := range lines {
		s.Text(cx, top+float64(i)*lineHeight, l.text, l.color, AlignCenter)
	}
}

type line struct {
	text  string
	color core.Color
}
