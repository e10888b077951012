// Package audio plays battle cries through a selectable backend.
package audio

import (
	"context"
	"fmt"

	"github.com/depeter/pokedex/internal/config"
)

// Player plays an audio clip given by URL or local path.
type Player interface {
	// Play blocks until the clip finishes or ctx is done.
	Play(ctx context.Context, ref string) error
	Close() error
}

// New creates the player selected by cfg.Backend.
func New(cfg config.AudioConfig) (Player, error) {
	switch cfg.Backend {
	case config.BackendBeep, "":
		return NewBeepPlayer(cfg.Volume), nil
	case config.BackendMPV:
		return NewMPVPlayer(cfg.Volume)
	case config.BackendNone:
		return Silent{}, nil
	default:
		return nil, fmt.Errorf("unknown audio backend %q", cfg.Backend)
	}
}

// Silent is a Player that plays nothing.
type Silent struct{}

func (Silent) Play(ctx context.Context, ref string) error { return nil }
func (Silent) Close() error                               { return nil }
