package core

// Terminal size used when the host cannot report one.
const (
	DefaultScreenW = 80
	DefaultScreenH = 24
)

// RuntimeConfig holds host settings for one session: the terminal size and
// an optional tick rate override.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (0 = use the game config's fps)
}

// WithDefaults fills a missing screen size with DefaultScreenW x DefaultScreenH.
// SSH clients without a pty report 0x0.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		c.ScreenW, c.ScreenH = DefaultScreenW, DefaultScreenH
	}
	return c
}
