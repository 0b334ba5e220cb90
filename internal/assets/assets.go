// Package assets embeds the game's sound effects.
package assets

import "embed"

// FS holds sounds/<name>.wav for every sound effect.
//
//go:embed sounds/*.wav
var FS embed.FS
