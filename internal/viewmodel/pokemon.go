// Package viewmodel adapts domain records into display-ready values for the
// window and terminal front ends.
package viewmodel

import (
	"context"
	"image"
	"log"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/depeter/pokedex/internal/colorutil"
	"github.com/depeter/pokedex/internal/constants"
	"github.com/depeter/pokedex/internal/pokemon"
)

// ImageLoader loads sprite images. It returns nil when an image is unavailable.
type ImageLoader interface {
	LoadImage(ctx context.Context, ref string) image.Image
}

// AudioPlayer plays a clip by reference.
type AudioPlayer interface {
	Play(ctx context.Context, ref string) error
}

// PokemonViewModel exposes formatted, display-ready data for one Pokémon and
// loads its sprites and cry on request.
//
// Formatted values are derived from the record on every call. The sprites and
// the derived color are the only state; LoadSprite replaces them and readers
// may call the accessors concurrently with a load.
type PokemonViewModel struct {
	pokemon pokemon.Pokemon
	images  ImageLoader
	audio   AudioPlayer

	mu         sync.RWMutex
	frontImage image.Image
	backImage  image.Image
	color      colorutil.Color
	hasColor   bool
}

// New creates a view model for p. Either collaborator may be nil, in which
// case sprites never load and cries never play.
func New(p pokemon.Pokemon, images ImageLoader, audio AudioPlayer) *PokemonViewModel {
	return &PokemonViewModel{
		pokemon: p,
		images:  images,
		audio:   audio,
	}
}

func (vm *PokemonViewModel) ID() int { return vm.pokemon.ID }

func (vm *PokemonViewModel) Name() string { return capitalize(vm.pokemon.Name) }

// Height converts decimeters to meters, e.g. "0.7 m".
func (vm *PokemonViewModel) Height() string {
	return formatTenths(vm.pokemon.Height) + " m"
}

// Weight converts hectograms to kilograms, e.g. "6.9 kg".
func (vm *PokemonViewModel) Weight() string {
	return formatTenths(vm.pokemon.Weight) + " kg"
}

func (vm *PokemonViewModel) Types() string {
	names := make([]string, len(vm.pokemon.Types))
	for i, t := range vm.pokemon.Types {
		names[i] = capitalize(t.Type.Name)
	}
	return strings.Join(names, ", ")
}

// Abilities separates entries with a blank line.
func (vm *PokemonViewModel) Abilities() string {
	names := make([]string, len(vm.pokemon.Abilities))
	for i, a := range vm.pokemon.Abilities {
		names[i] = capitalize(a.Ability.Name)
	}
	return strings.Join(names, ",\n\n")
}

func (vm *PokemonViewModel) Stats() []pokemon.Stat {
	return append([]pokemon.Stat(nil), vm.pokemon.Stats...)
}

// Moves lists at most the first constants.MaxDisplayedMoves moves.
func (vm *PokemonViewModel) Moves() string {
	moves := vm.pokemon.Moves
	if len(moves) > constants.MaxDisplayedMoves {
		moves = moves[:constants.MaxDisplayedMoves]
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = capitalize(m.Move.Name)
	}
	return strings.Join(names, ", ")
}

// LatestCry returns the most recent battle cry reference, if any.
func (vm *PokemonViewModel) LatestCry() (string, bool) {
	return vm.pokemon.Cries.Latest, vm.pokemon.Cries.Latest != ""
}

func (vm *PokemonViewModel) FrontImage() image.Image {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.frontImage
}

func (vm *PokemonViewModel) BackImage() image.Image {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.backImage
}

// Color returns the color derived by the last LoadSprite. It reports false
// until a load has completed.
func (vm *PokemonViewModel) Color() (colorutil.Color, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.color, vm.hasColor
}

// IsLight reports whether the derived color needs dark content. It is false
// before the first load.
func (vm *PokemonViewModel) IsLight() bool {
	c, ok := vm.Color()
	return ok && c.IsLight()
}

// LoadSprite loads the front and then the back sprite and derives the
// dominant color of the front one. The color falls back to
// colorutil.Fallback when there is no front image or it has no visible pixels.
func (vm *PokemonViewModel) LoadSprite(ctx context.Context) {
	var front, back image.Image
	if vm.images != nil {
		front = vm.images.LoadImage(ctx, vm.pokemon.Sprite.Front)
		back = vm.images.LoadImage(ctx, vm.pokemon.Sprite.Back)
	}

	c, ok := colorutil.Dominant(front)
	if !ok {
		c = colorutil.Fallback
	}

	vm.mu.Lock()
	vm.frontImage = front
	vm.backImage = back
	vm.color = c
	vm.hasColor = true
	vm.mu.Unlock()
}

// PlaySound plays the given cry. Failures are logged and otherwise ignored.
func (vm *PokemonViewModel) PlaySound(ctx context.Context, cry string) {
	if vm.audio == nil || cry == "" {
		return
	}
	if err := vm.audio.Play(ctx, cry); err != nil && ctx.Err() == nil {
		log.Printf("Failed to play cry for %s: %v", vm.pokemon.Name, err)
	}
}

// Equal reports whether both view models present the same Pokémon.
func (vm *PokemonViewModel) Equal(other *PokemonViewModel) bool {
	if vm == nil || other == nil {
		return vm == other
	}
	return vm.ID() == other.ID()
}

// titlers pools English title casers. A Caser keeps state between calls and
// accessors run on both the render loop and loader goroutines.
var titlers = sync.Pool{
	New: func() any {
		c := cases.Title(language.English)
		return &c
	},
}

// capitalize title-cases each word; hyphens and spaces separate words.
func capitalize(s string) string {
	c := titlers.Get().(*cases.Caser)
	defer titlers.Put(c)
	return c.String(s)
}

// formatTenths renders v/10 as the shortest decimal, keeping at least one
// fractional digit: 7 -> "0.7", 20 -> "2.0".
func formatTenths(v int) string {
	s := strconv.FormatFloat(float64(v)/10, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

var statLabels = map[string]string{
	"hp":              "HP",
	"attack":          "Atk",
	"defense":         "Def",
	"special-attack":  "SpA",
	"special-defense": "SpD",
	"speed":           "Spe",
}

// StatLabel returns a short display label for a stat.
func StatLabel(s pokemon.Stat) string {
	if l, ok := statLabels[s.Name()]; ok {
		return l
	}
	return capitalize(s.Name())
}
