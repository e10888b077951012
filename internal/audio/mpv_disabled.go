//go:build nompv

package audio

import (
	"context"
	"errors"
)

var errNoMPV = errors.New("mpv support not built (build without tag 'nompv')")

// MPVPlayer is unavailable in this build.
type MPVPlayer struct{}

func NewMPVPlayer(volume int) (*MPVPlayer, error) { return nil, errNoMPV }

func (p *MPVPlayer) Play(ctx context.Context, ref string) error { return errNoMPV }
func (p *MPVPlayer) Close() error                               { return nil }
