package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/pokedex/assets/icon"
	"github.com/depeter/pokedex/internal/app"
	"github.com/depeter/pokedex/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Open a window browsing the records in FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, records, imgCache, err := setup(args[0])
		if err != nil {
			return err
		}
		if err := ui.InitFonts(goregular.TTF); err != nil {
			return err
		}

		game := app.NewGame(cfg, imgCache, openAudio(cfg))
		defer game.Close()
		if err := game.ShowPokemon(records); err != nil {
			return err
		}

		ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
		ebiten.SetWindowTitle("Pokédex")
		ebiten.SetWindowIcon(icon.Generate())
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.SetFullscreen(cfg.UI.Fullscreen)

		return ebiten.RunGame(game)
	},
}
