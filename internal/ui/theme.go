package ui

import (
	"image/color"

	"github.com/depeter/pokedex/internal/colorutil"
)

// Colors for window chrome. Record screens paint over the background with
// the color derived from the sprite.
var (
	ColorBackground    color.Color = colorutil.DarkGrey
	ColorSurface                   = color.RGBA{R: 0x2E, G: 0x2E, B: 0x34, A: 0xFF}
	ColorText                      = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary             = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorStatTrack                 = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x40}
)

// Layout constants
const (
	Padding    = 32
	ColumnGap  = 40
	SpriteSize = 96

	FontSizeTitle   = 30
	FontSizeHeading = 18
	FontSizeBody    = 15
	FontSizeSmall   = 12

	StatBarWidth  = 220
	StatBarHeight = 8
	MaxBaseStat   = 255
)
