package colorutil

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// sampleSize bounds the longest side of the image that gets averaged.
const sampleSize = 64

// Dominant returns the average color of the visible pixels of img, weighted
// by alpha and computed in linear RGB. It reports false for a nil image or
// one with no visible pixels.
func Dominant(img image.Image) (Color, bool) {
	if img == nil {
		return Color{}, false
	}
	src := downscale(img)
	bounds := src.Bounds()

	var r, g, b, weight float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := src.At(x, y)
			_, _, _, a := px.RGBA()
			if a == 0 {
				continue
			}
			cf, _ := colorful.MakeColor(px)
			lr, lg, lb := cf.LinearRgb()
			w := float64(a) / 0xFFFF
			r += lr * w
			g += lg * w
			b += lb * w
			weight += w
		}
	}
	if weight == 0 {
		return Color{}, false
	}

	avg := colorful.LinearRgb(r/weight, g/weight, b/weight).Clamped()
	return Color{Color: avg, A: 1}, true
}

func downscale(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= sampleSize && h <= sampleSize {
		return img
	}
	longest := max(w, h)
	dw := max(1, w*sampleSize/longest)
	dh := max(1, h*sampleSize/longest)

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
