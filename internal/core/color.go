package core

// Color is a logical color for a screen cell or a drawn shape. Each host maps
// it to what its output supports: ANSI codes in the terminal, RGBA on canvas.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray

	numColors
)

var colorNames = [numColors]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorWhite:        "white",
	ColorBrightRed:    "bright-red",
	ColorBrightGreen:  "bright-green",
	ColorBrightYellow: "bright-yellow",
	ColorGray:         "gray",
}

// NumColors is the number of palette entries; hosts size lookup tables with it.
const NumColors = int(numColors)

func (c Color) String() string {
	if c < numColors {
		return colorNames[c]
	}
	return "unknown"
}
