package colorutil

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestDominantNil(t *testing.T) {
	_, ok := Dominant(nil)
	assert.False(t, ok)
}

func TestDominantTransparent(t *testing.T) {
	_, ok := Dominant(uniform(32, 32, color.Transparent))
	assert.False(t, ok)

	_, ok = Dominant(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.False(t, ok)
}

func TestDominantUniform(t *testing.T) {
	c, ok := Dominant(uniform(16, 16, PokedexRed))
	require.True(t, ok)
	assert.InDelta(t, PokedexRed.R, c.R, 0.005)
	assert.InDelta(t, PokedexRed.G, c.G, 0.005)
	assert.InDelta(t, PokedexRed.B, c.B, 0.005)
	assert.Equal(t, 1.0, c.A)
}

func TestDominantIgnoresTransparentBackground(t *testing.T) {
	img := uniform(40, 40, color.Transparent)
	draw.Draw(img, image.Rect(10, 10, 20, 20), image.NewUniform(Blue), image.Point{}, draw.Src)

	c, ok := Dominant(img)
	require.True(t, ok)
	assert.Equal(t, Blue.Hex(), c.Hex())
}

func TestDominantAveragesInLinearLight(t *testing.T) {
	img := uniform(2, 1, color.Black)
	img.Set(1, 0, color.White)

	c, ok := Dominant(img)
	require.True(t, ok)
	// sRGB encoding of linear 0.5
	assert.InDelta(t, 0.735, c.R, 0.01)
	assert.InDelta(t, c.R, c.G, eps)
	assert.InDelta(t, c.R, c.B, eps)
}

func TestDominantDownscalesLargeImages(t *testing.T) {
	c, ok := Dominant(uniform(400, 120, Green))
	require.True(t, ok)
	assert.InDelta(t, Green.R, c.R, 0.01)
	assert.InDelta(t, Green.G, c.G, 0.01)
	assert.InDelta(t, Green.B, c.B, 0.01)

	small := downscale(uniform(400, 120, Green))
	assert.Equal(t, sampleSize, small.Bounds().Dx())
	assert.Equal(t, 19, small.Bounds().Dy())
}
