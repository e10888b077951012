package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/depeter/pokedex/internal/audio"
	"github.com/depeter/pokedex/internal/cache"
	"github.com/depeter/pokedex/internal/config"
	"github.com/depeter/pokedex/internal/pokemon"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "pokedex",
	Short:        "Browse Pokémon records with sprite-themed colors and battle cries",
	Long:         `pokedex reads PokeAPI-format JSON records from disk and shows them in a window or as terminal cards.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pokedex/config.toml)")
	rootCmd.AddCommand(viewCmd, cardCmd, cryCmd, configCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// setup loads the config, the records named by path and the sprite cache.
func setup(path string) (*config.Config, []pokemon.Pokemon, *cache.ImageCache, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	records, err := pokemon.LoadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load records: %w", err)
	}
	imgCache, err := cache.NewImageCache(cfg.CacheDir())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init image cache: %w", err)
	}
	return cfg, records, imgCache, nil
}

// openAudio returns the configured player, or a silent one when the backend
// cannot start.
func openAudio(cfg *config.Config) audio.Player {
	player, err := audio.New(cfg.Audio)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		return audio.Silent{}
	}
	return player
}
