package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// lineSpacing is the line height as a multiple of the font size.
const lineSpacing = 1.4

var (
	fontSource *text.GoTextFaceSource
	fontFaces  = make(map[float64]*text.GoTextFace)
)

// InitFonts loads the TrueType font used for all window text. It must run
// before the first frame.
func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	clear(fontFaces)
	return nil
}

// GetFace returns the face for size, creating it on first use. Faces are only
// touched from the render loop.
func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: fontSource, Size: size}
	fontFaces[size] = face
	return face
}

// DrawText draws txt with its top-left corner at (x, y). Newlines start new lines.
func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size * lineSpacing
	text.Draw(dst, txt, GetFace(size), op)
}

// MeasureText returns the width and height of txt, counting every line.
func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size), size*lineSpacing)
}

// DrawList lays items out in reading order joined by sep, breaking lines only
// between items so a multi-word entry like "Swords Dance" stays whole. It
// returns the height used.
func DrawList(dst *ebiten.Image, items []string, sep string, x, y, maxWidth, size float64, clr color.Color) float64 {
	face := GetFace(size)
	lines := wrapItems(items, sep, maxWidth, func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	})
	for i, line := range lines {
		DrawText(dst, line, x, y+float64(i)*size*lineSpacing, size, clr)
	}
	return float64(len(lines)) * size * lineSpacing
}

// wrapItems groups items into lines no wider than maxWidth as reported by
// width. Every line but the last ends with the trimmed separator. An item
// wider than maxWidth gets a line of its own. Empty items are skipped.
func wrapItems(items []string, sep string, maxWidth float64, width func(string) float64) []string {
	var lines []string
	line := ""
	for _, item := range items {
		if item == "" {
			continue
		}
		if line == "" {
			line = item
			continue
		}
		if candidate := line + sep + item; width(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line+strings.TrimRight(sep, " "))
		line = item
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
