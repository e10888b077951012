package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/depeter/pokedex/internal/termcard"
	"github.com/depeter/pokedex/internal/viewmodel"
)

const spriteLoadTimeout = 20 * time.Second

var cardOpts termcard.Options

var cardCmd = &cobra.Command{
	Use:   "card FILE",
	Short: "Print each record in FILE as a card themed by its sprite color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, records, imgCache, err := setup(args[0])
		if err != nil {
			return err
		}

		for _, p := range records {
			vm := viewmodel.New(p, imgCache, nil)
			ctx, cancel := context.WithTimeout(cmd.Context(), spriteLoadTimeout)
			vm.LoadSprite(ctx)
			cancel()
			fmt.Fprintln(cmd.OutOrStdout(), termcard.Render(vm, cardOpts))
		}
		return nil
	},
}

func init() {
	cardCmd.Flags().BoolVar(&cardOpts.Sprite, "sprite", false, "draw the front sprite with half blocks")
	cardCmd.Flags().IntVar(&cardOpts.Width, "width", 48, "card width in cells")
}
