package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/pokedex/internal/audio"
	"github.com/depeter/pokedex/internal/cache"
	"github.com/depeter/pokedex/internal/config"
	"github.com/depeter/pokedex/internal/pokemon"
	"github.com/depeter/pokedex/internal/ui"
	"github.com/depeter/pokedex/internal/viewmodel"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Audio   audio.Player
	Screens *ui.ScreenManager

	Width, Height int
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, imgCache *cache.ImageCache, player audio.Player) *Game {
	return &Game{
		Config:  cfg,
		Cache:   imgCache,
		Audio:   player,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
}

// ShowPokemon pushes a screen browsing records.
func (g *Game) ShowPokemon(records []pokemon.Pokemon) error {
	keys, err := ui.ParseKeys(g.Config.Keybinds)
	if err != nil {
		return err
	}
	entries := make([]*viewmodel.PokemonViewModel, len(records))
	for i, p := range records {
		entries[i] = viewmodel.New(p, g.Cache, g.Audio)
	}
	g.Screens.Push(ui.NewPokemonScreen(entries, keys))
	return nil
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}
	ui.UpdateInputState()

	if g.Screens.StackSize() == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

// Close cancels pending screen work and releases the audio device.
func (g *Game) Close() error {
	g.Screens.ClearStack()
	if g.Audio == nil {
		return nil
	}
	return g.Audio.Close()
}
