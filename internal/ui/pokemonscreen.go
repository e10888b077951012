package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/pokedex/internal/colorutil"
	"github.com/depeter/pokedex/internal/constants"
	"github.com/depeter/pokedex/internal/viewmodel"
)

// PokemonScreen shows one record at a time on its sprite's dominant color.
type PokemonScreen struct {
	entries []*viewmodel.PokemonViewModel
	index   int
	keys    Keys

	showBack bool
	loaded   map[int]bool // entry index -> LoadSprite started

	// Sprites converted for drawing, keyed by the decoded source image.
	sprites map[image.Image]*ebiten.Image

	ctx    context.Context
	cancel context.CancelFunc
	status string
}

// NewPokemonScreen creates a screen browsing entries. Entries equal to an
// earlier one are dropped.
func NewPokemonScreen(entries []*viewmodel.PokemonViewModel, keys Keys) *PokemonScreen {
	var unique []*viewmodel.PokemonViewModel
	for _, vm := range entries {
		dup := false
		for _, seen := range unique {
			if seen.Equal(vm) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, vm)
		}
	}
	return &PokemonScreen{
		entries: unique,
		keys:    keys,
		loaded:  make(map[int]bool),
		sprites: make(map[image.Image]*ebiten.Image),
	}
}

func (ps *PokemonScreen) Name() string {
	if vm := ps.current(); vm != nil {
		return "Pokemon: " + vm.Name()
	}
	return "Pokemon"
}

func (ps *PokemonScreen) OnEnter() {
	ps.ctx, ps.cancel = context.WithCancel(context.Background())
	ps.loaded = make(map[int]bool)
	ps.ensureLoaded(ps.index)
}

func (ps *PokemonScreen) OnExit() {
	if ps.cancel != nil {
		ps.cancel()
	}
}

func (ps *PokemonScreen) current() *viewmodel.PokemonViewModel {
	if len(ps.entries) == 0 {
		return nil
	}
	return ps.entries[ps.index]
}

// ensureLoaded starts a sprite load for entry i once per visit of the screen.
func (ps *PokemonScreen) ensureLoaded(i int) {
	if i < 0 || i >= len(ps.entries) || ps.loaded[i] {
		return
	}
	ps.loaded[i] = true
	go ps.entries[i].LoadSprite(ps.ctx)
}

func (ps *PokemonScreen) Update() (*ScreenTransition, error) {
	if justPressed(ps.keys.Back) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	if len(ps.entries) == 0 {
		return nil, nil
	}

	n := len(ps.entries)
	switch {
	case inputRepeating(ps.keys.Next):
		ps.move((ps.index + 1) % n)
	case inputRepeating(ps.keys.Previous):
		ps.move((ps.index - 1 + n) % n)
	}

	if justPressed(ps.keys.Flip) {
		ps.showBack = !ps.showBack
	}

	if justPressed(ps.keys.Cry) {
		vm := ps.current()
		if cry, ok := vm.LatestCry(); ok {
			ps.status = ""
			go vm.PlaySound(ps.ctx, cry)
		} else {
			ps.status = vm.Name() + " has no cry"
		}
	}
	return nil, nil
}

func (ps *PokemonScreen) move(i int) {
	if i == ps.index {
		return
	}
	ps.index = i
	ps.status = ""
	ps.ensureLoaded(i)
	// Preload the next entry so browsing forward shows its color immediately.
	ps.ensureLoaded((i + 1) % len(ps.entries))
}

// ebitenImage converts a decoded sprite once and caches the result.
func (ps *PokemonScreen) ebitenImage(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if eimg, ok := ps.sprites[img]; ok {
		return eimg
	}
	eimg := ebiten.NewImageFromImage(img)
	ps.sprites[img] = eimg
	return eimg
}

func (ps *PokemonScreen) Draw(dst *ebiten.Image) {
	vm := ps.current()
	if vm == nil {
		DrawText(dst, "No Pokémon to show", Padding, Padding, FontSizeHeading, ColorText)
		return
	}

	var bg color.Color = ColorSurface
	var fg, fgMuted color.Color = ColorText, ColorTextSecondary
	if c, ok := vm.Color(); ok {
		bg = c
		fg = colorutil.Foreground(c)
		fgMuted = colorutil.FromHexAlpha(colorutil.Foreground(c).Hex(), 0.65)
	}
	dst.Fill(bg)

	sw := float64(dst.Bounds().Dx())
	sh := float64(dst.Bounds().Dy())
	spriteBox := float64(SpriteSize * constants.SpriteScale)

	// Header
	DrawText(dst, fmt.Sprintf("No. %03d", vm.ID()), Padding, Padding, FontSizeHeading, fgMuted)
	DrawText(dst, vm.Name(), Padding, Padding+FontSizeHeading+6, FontSizeTitle, fg)
	top := float64(Padding + FontSizeHeading + FontSizeTitle + 24)

	// Sprite
	sprite := vm.FrontImage()
	label := "front"
	if ps.showBack {
		sprite = vm.BackImage()
		label = "back"
	}
	if eimg := ps.ebitenImage(sprite); eimg != nil {
		b := eimg.Bounds()
		scale := spriteBox / float64(max(b.Dx(), b.Dy()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(Padding, top)
		dst.DrawImage(eimg, op)
	} else {
		msg := "Loading…"
		if _, ok := vm.Color(); ok {
			msg = "No " + label + " sprite"
		}
		DrawText(dst, msg, Padding+spriteBox/2-40, top+spriteBox/2, FontSizeBody, fgMuted)
	}

	// Details column
	x := Padding + spriteBox + ColumnGap
	y := top
	for _, row := range [][2]string{
		{"Type", vm.Types()},
		{"Height", vm.Height()},
		{"Weight", vm.Weight()},
	} {
		DrawText(dst, row[0], x, y, FontSizeSmall, fgMuted)
		DrawText(dst, row[1], x+80, y-2, FontSizeBody, fg)
		y += FontSizeBody + 12
	}

	DrawText(dst, "Abilities", x, y, FontSizeSmall, fgMuted)
	abilities := strings.ReplaceAll(vm.Abilities(), ",\n\n", "\n")
	DrawText(dst, abilities, x+80, y-2, FontSizeBody, fg)
	_, ah := MeasureText(abilities, FontSizeBody)
	y += ah + 16

	y = ps.drawStats(dst, vm, x, y, fg, fgMuted)

	// Moves span the full width below the sprite
	movesY := max(y, top+spriteBox) + 16
	DrawText(dst, "Moves", Padding, movesY, FontSizeSmall, fgMuted)
	DrawList(dst, strings.Split(vm.Moves(), ", "), ", ", Padding, movesY+FontSizeSmall+8, sw-Padding*2, FontSizeBody, fg)

	// Footer
	footer := ps.keys.Hint()
	if ps.status != "" {
		footer = ps.status
	}
	DrawText(dst, fmt.Sprintf("%d / %d   %s", ps.index+1, len(ps.entries), footer), Padding, sh-Padding, FontSizeSmall, fgMuted)
}

func (ps *PokemonScreen) drawStats(dst *ebiten.Image, vm *viewmodel.PokemonViewModel, x, y float64, fg, fgMuted color.Color) float64 {
	for _, s := range vm.Stats() {
		DrawText(dst, viewmodel.StatLabel(s), x, y, FontSizeSmall, fgMuted)
		DrawText(dst, fmt.Sprintf("%d", s.BaseStat), x+44, y-2, FontSizeBody, fg)

		bx := float32(x + 90)
		by := float32(y + 4)
		filled := float32(StatBarWidth) * float32(min(s.BaseStat, MaxBaseStat)) / MaxBaseStat
		vector.DrawFilledRect(dst, bx, by, StatBarWidth, StatBarHeight, ColorStatTrack, false)
		vector.DrawFilledRect(dst, bx, by, filled, StatBarHeight, fg, false)
		y += FontSizeBody + 8
	}
	return y
}
