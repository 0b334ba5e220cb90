package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Glyphs used for filled shapes.
const (
	fillChar = '█'
)

// ScreenSurface draws canvas coordinates onto a cell screen. The viewport
// (a region of the canvas) is stretched over the whole screen.
type ScreenSurface struct {
	screen   *core.Screen
	viewport core.Box
}

// NewScreenSurface creates a surface showing viewport on screen.
func NewScreenSurface(screen *core.Screen, viewport core.Box) *ScreenSurface {
	return &ScreenSurface{screen: screen, viewport: viewport}
}

// ViewportFor returns the canvas region a terminal should show for a game:
// the arena plus room for the HUD above it and the ship below it.
func ViewportFor(g *invaders.Game) core.Box {
	return g.Bounds().Expand(invaders.ShipWidth, 2*invaders.ShipHeight)
}

// Screen returns the underlying cell buffer.
func (s *ScreenSurface) Screen() *core.Screen {
	return s.screen
}

// Cell returns the cell column and row containing canvas point (x, y).
func (s *ScreenSurface) Cell(x, y float64) (int, int) {
	cx := (x - s.viewport.Left) * float64(s.screen.Width()) / s.viewport.Width()
	cy := (y - s.viewport.Top) * float64(s.screen.Height()) / s.viewport.Height()
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// cellRect converts a canvas box to the cells it covers, at least one.
func (s *ScreenSurface) cellRect(b core.Box) core.Rect {
	x0, y0 := s.Cell(b.Left, b.Top)
	x1, y1 := s.Cell(b.Right, b.Bottom)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Clear implements invaders.Surface.
func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

// FillRect implements invaders.Surface.
func (s *ScreenSurface) FillRect(b core.Box, c core.Color) {
	if !b.Finite() {
		return
	}
	s.screen.DrawRect(s.cellRect(b), fillChar, c)
}

// StrokeRect implements invaders.Surface.
func (s *ScreenSurface) StrokeRect(b core.Box, c core.Color) {
	if !b.Finite() {
		return
	}
	s.screen.DrawBox(s.cellRect(b), c)
}

// Text implements invaders.Surface. Text is never scaled; only its anchor is.
// On narrow screens the text is shifted back inside the screen edges.
func (s *ScreenSurface) Text(x, y float64, text string, c core.Color, a invaders.Align) {
	cx, cy := s.Cell(x, y)
	w := lipgloss.Width(text)
	switch a {
	case invaders.AlignCenter:
		cx -= w / 2
	case invaders.AlignRight:
		cx -= w - 1
	}
	cx = core.Clamp(cx, 0, max(s.screen.Width()-w, 0))
	s.screen.DrawText(cx, cy, text, c)
}
