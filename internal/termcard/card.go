// Package termcard renders a Pokémon as a colored card for the terminal.
package termcard

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/depeter/pokedex/internal/colorutil"
	"github.com/depeter/pokedex/internal/viewmodel"
)

const (
	defaultWidth = 48
	maxBaseStat  = 255
	labelWidth   = 11
)

// Options controls card layout.
type Options struct {
	// Width is the outer card width in cells. Zero means 48.
	Width int
	// Sprite draws the front sprite above the details.
	Sprite bool
}

// Render renders vm for stdout.
func Render(vm *viewmodel.PokemonViewModel, opts Options) string {
	return RenderWith(lipgloss.NewRenderer(os.Stdout), vm, opts)
}

// RenderWith renders vm using r's color profile. The card is themed with the
// color derived by LoadSprite, or colorutil.Fallback before a load.
func RenderWith(r *lipgloss.Renderer, vm *viewmodel.PokemonViewModel, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - 4 // border + padding

	theme, ok := vm.Color()
	if !ok {
		theme = colorutil.Fallback
	}
	fg := colorutil.Foreground(theme)

	header := r.NewStyle().
		Bold(true).
		Width(inner).
		Padding(0, 1).
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(theme.Hex())).
		Render(fmt.Sprintf("No. %03d  %s", vm.ID(), vm.Name()))

	label := r.NewStyle().Width(labelWidth).Bold(true)
	value := r.NewStyle().Width(inner - labelWidth)
	row := func(name, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(name), value.Render(v))
	}

	sections := []string{header}
	if opts.Sprite {
		if s := renderSprite(r, vm.FrontImage(), inner); s != "" {
			sections = append(sections, s)
		}
	}
	sections = append(sections,
		row("Type", vm.Types()),
		row("Height", vm.Height()),
		row("Weight", vm.Weight()),
		row("Abilities", strings.ReplaceAll(vm.Abilities(), ",\n\n", "\n")),
		"",
		renderStats(r, vm, inner, theme),
		"",
		row("Moves", vm.Moves()),
	)
	if cry, ok := vm.LatestCry(); ok {
		sections = append(sections, row("Cry", cry))
	}

	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Hex())).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderStats(r *lipgloss.Renderer, vm *viewmodel.PokemonViewModel, inner int, theme colorutil.Color) string {
	bar := r.NewStyle().Foreground(lipgloss.Color(theme.Hex()))
	barWidth := inner - 10
	if barWidth < 1 {
		barWidth = 1
	}

	var lines []string
	for _, s := range vm.Stats() {
		n := s.BaseStat * barWidth / maxBaseStat
		if n < 1 && s.BaseStat > 0 {
			n = 1
		}
		if n > barWidth {
			n = barWidth
		}
		lines = append(lines, fmt.Sprintf("%-4s %4d %s", viewmodel.StatLabel(s), s.BaseStat, bar.Render(strings.Repeat("█", n))))
	}
	return strings.Join(lines, "\n")
}
