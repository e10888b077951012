package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depeter/pokedex/internal/viewmodel"
)

var legacyCry bool

var cryCmd = &cobra.Command{
	Use:   "cry FILE",
	Short: "Play the battle cry of each record in FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, records, _, err := setup(args[0])
		if err != nil {
			return err
		}
		player := openAudio(cfg)
		defer player.Close()

		for _, p := range records {
			vm := viewmodel.New(p, nil, player)
			cry, ok := vm.LatestCry()
			if legacyCry {
				cry, ok = p.Cries.Legacy, p.Cries.Legacy != ""
			}
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s has no cry\n", vm.Name())
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", vm.Name(), cry)
			vm.PlaySound(cmd.Context(), cry)
		}
		return nil
	},
}

func init() {
	cryCmd.Flags().BoolVar(&legacyCry, "legacy", false, "play the legacy cry instead of the latest")
}
