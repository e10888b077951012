package termcard

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/depeter/pokedex/internal/colorutil"
)

// visibleBounds returns the smallest rectangle holding every non-transparent
// pixel, or an empty rectangle when there is none.
func visibleBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	out := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			out = out.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return out
}

// fitSprite crops img to its visible pixels and scales it, nearest neighbor,
// to at most maxCols pixels wide. Height is kept even so that two pixel rows
// map onto one text row.
func fitSprite(img image.Image, maxCols int) *image.NRGBA {
	crop := visibleBounds(img)
	if crop.Empty() || maxCols <= 0 {
		return nil
	}
	w, h := crop.Dx(), crop.Dy()
	if w > maxCols {
		h = max(1, h*maxCols/w)
		w = maxCols
	}
	if h%2 == 1 {
		h++
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)
	return dst
}

// renderSprite draws img with upper half blocks: the foreground paints the
// top pixel of each cell and the background the bottom one.
func renderSprite(r *lipgloss.Renderer, img image.Image, maxCols int) string {
	if img == nil {
		return ""
	}
	px := fitSprite(img, maxCols)
	if px == nil {
		return ""
	}
	b := px.Bounds()

	var sb strings.Builder
	for y := 0; y < b.Dy(); y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Dx(); x++ {
			top, bottom := px.NRGBAAt(x, y), px.NRGBAAt(x, y+1)
			style := r.NewStyle()
			glyph := "▀"
			switch {
			case top.A == 0 && bottom.A == 0:
				glyph = " "
			case top.A == 0:
				glyph = "▄"
				style = style.Foreground(hexOf(bottom))
			default:
				style = style.Foreground(hexOf(top))
				if bottom.A != 0 {
					style = style.Background(hexOf(bottom))
				}
			}
			sb.WriteString(style.Render(glyph))
		}
	}
	return sb.String()
}

func hexOf(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(colorutil.FromColor(c).Hex())
}
