package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/depeter/pokedex/internal/colorutil"
)

var (
	shellTop    = colorutil.PokedexRed
	shellBottom = color.RGBA{R: 0xF4, G: 0xF4, B: 0xF4, A: 0xFF}
	outline     = colorutil.DarkGrey
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a Poké Ball centered in a size x size transparent image.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	c := s / 2
	outer := s * 0.46
	ring := math.Max(1, s*0.05)
	band := math.Max(1, s*0.04)
	button := s * 0.13

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			d := math.Hypot(px-c, py-c)

			cov := coverage(outer - d)
			if cov == 0 {
				continue
			}

			var fill color.Color
			switch {
			case d > outer-ring:
				fill = outline
			case d < button*0.6:
				fill = shellBottom
			case d < button:
				fill = outline
			case math.Abs(py-c) < band:
				fill = outline
			case py < c:
				fill = shellTop
			default:
				fill = shellBottom
			}
			img.SetRGBA(x, y, withAlpha(fill, cov))
		}
	}
	return img
}

// coverage approximates how much of a pixel lies inside an edge at signed
// distance dist, for a one-pixel anti-aliased rim.
func coverage(dist float64) float64 {
	return math.Max(0, math.Min(1, dist+0.5))
}

func withAlpha(c color.Color, a float64) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * a),
		G: uint8(float64(g>>8) * a),
		B: uint8(float64(b>>8) * a),
		A: uint8(255 * a),
	}
}
