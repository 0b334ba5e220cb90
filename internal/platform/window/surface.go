package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

const (
	fontSize    = 14
	strokeWidth = 1
)

var background = color.RGBA{0x00, 0x00, 0x00, 0xff}

// rgba maps core colors onto the canvas palette.
var rgba = [core.NumColors]color.RGBA{
	core.ColorDefault:      {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:          {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:        {0x00, 0x66, 0x00, 0xff},
	core.ColorWhite:        {0xff, 0xff, 0xff, 0xff},
	core.ColorBrightRed:    {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:  {0x00, 0x99, 0x00, 0xff},
	core.ColorBrightYellow: {0xff, 0xff, 0x55, 0xff},
	core.ColorGray:         {0x88, 0x88, 0x88, 0xff},
}

func colorOf(c core.Color) color.RGBA {
	if int(c) < len(rgba) {
		return rgba[c]
	}
	return rgba[core.ColorDefault]
}

func loadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("window: parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("window: font face: %w", err)
	}
	return face, nil
}

// ImageSurface draws onto an ebiten image whose pixels are canvas units.
type ImageSurface struct {
	target *ebiten.Image
	face   font.Face
}

// NewImageSurface creates a surface drawing text with face.
func NewImageSurface(face font.Face) *ImageSurface {
	return &ImageSurface{face: face}
}

// SetTarget selects the image the next frame is drawn onto.
func (s *ImageSurface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Clear implements invaders.Surface.
func (s *ImageSurface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(background)
}

// FillRect implements invaders.Surface.
func (s *ImageSurface) FillRect(b core.Box, c core.Color) {
	if s.target == nil || !b.Finite() {
		return
	}
	vector.DrawFilledRect(s.target,
		float32(b.Left), float32(b.Top), float32(b.Width()), float32(b.Height()),
		colorOf(c), false)
}

// StrokeRect implements invaders.Surface.
func (s *ImageSurface) StrokeRect(b core.Box, c core.Color) {
	if s.target == nil || !b.Finite() {
		return
	}
	vector.StrokeRect(s.target,
		float32(b.Left), float32(b.Top), float32(b.Width()), float32(b.Height()),
		strokeWidth, colorOf(c), false)
}

// Text implements invaders.Surface. y is the text's vertical centre.
func (s *ImageSurface) Text(x, y float64, str string, c core.Color, a invaders.Align) {
	if s.target == nil || str == "" {
		return
	}
	bounds := text.BoundString(s.face, str)
	switch a {
	case invaders.AlignCenter:
		x -= float64(bounds.Dx()) / 2
	case invaders.AlignRight:
		x -= float64(bounds.Dx())
	}
	baseline := y + float64(s.face.Metrics().Ascent.Ceil())/2
	text.Draw(s.target, str, s.face, int(x), int(baseline), colorOf(c))
}
