// Package colorutil parses hex theme colors, classifies perceived lightness
// and extracts the dominant color of sprite images.
package colorutil

import (
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// lightThreshold is the brightness above which a color counts as light.
const lightThreshold = 0.7

// Color is a normalized RGB color with an alpha component, all in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// Named palette used for theming.
var (
	DarkGrey   = FromHex("222222")
	PokedexRed = FromHex("d53b47")
	Orange     = FromHex("f89e2e")
	Blue       = FromHex("3898fe")
	Grey       = FromHex("8db6d2")
	Green      = FromHex("5ba74f")

	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)

	// Fallback is shown when no dominant color could be extracted: a
	// one-third gray (#555555).
	Fallback = RGB(1.0/3, 1.0/3, 1.0/3)
)

// RGB returns an opaque color from normalized components.
func RGB(r, g, b float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, A: 1}
}

// FromHex parses an opaque color from a hex string such as "d53b47" or
// "#d53b47". Malformed input yields black.
func FromHex(hex string) Color {
	return FromHexAlpha(hex, 1)
}

// FromHexAlpha is FromHex with an explicit alpha.
//
// Parsing is lenient: leading whitespace and an optional "0x" are skipped and
// digits are read up to the first non-hex character. Only the low 24 bits of
// the scanned value are used; a value that overflows 64 bits saturates.
func FromHexAlpha(hex string, alpha float64) Color {
	rgb := scanHex(strings.TrimPrefix(hex, "#"))
	return Color{
		Color: colorful.Color{
			R: float64((rgb&0xFF0000)>>16) / 255,
			G: float64((rgb&0x00FF00)>>8) / 255,
			B: float64(rgb&0x0000FF) / 255,
		},
		A: alpha,
	}
}

func scanHex(s string) uint64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && isHexDigit(s[2]) {
		s = s[2:]
	}
	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}
	// On overflow ParseUint reports ErrRange and returns the max value.
	v, _ := strconv.ParseUint(s[:end], 16, 64)
	return v
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// FromColor converts any color.Color, undoing alpha premultiplication.
// A fully transparent color converts to the zero Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	_, _, _, a := c.RGBA()
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Color{}
	}
	return Color{Color: cf, A: float64(a) / 0xFFFF}
}

// RGBA implements color.Color with alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	af := clamp01(c.A)
	a = uint32(af*0xFFFF + 0.5)
	r = uint32(clamp01(c.R)*af*0xFFFF + 0.5)
	g = uint32(clamp01(c.G)*af*0xFFFF + 0.5)
	b = uint32(clamp01(c.B)*af*0xFFFF + 0.5)
	return
}

// Brightness is the weighted luminance (R*299 + G*587 + B*114) / 1000.
// It picks legible content over a background and is not color-space correct.
func (c Color) Brightness() float64 {
	return (c.R*299 + c.G*587 + c.B*114) / 1000
}

// IsLight reports whether the color is bright enough to need dark content.
func (c Color) IsLight() bool {
	return c.Brightness() > lightThreshold
}

// IsLight classifies an arbitrary color.Color.
func IsLight(c color.Color) bool {
	return FromColor(c).IsLight()
}

// Foreground returns black for light backgrounds and white otherwise.
func Foreground(bg Color) Color {
	if bg.IsLight() {
		return Black
	}
	return White
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
