//go:build !nompv

package audio

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/gen2brain/go-mpv"
)

// MPVPlayer plays clips through an audio-only libmpv instance.
type MPVPlayer struct {
	m  *mpv.Mpv
	mu sync.Mutex
	pb playback
}

// NewMPVPlayer creates and initializes an mpv instance with video disabled.
func NewMPVPlayer(volume int) (*MPVPlayer, error) {
	m := mpv.New()

	must(m.SetOptionString("vid", "no"))
	must(m.SetOptionString("force-window", "no"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("terminal", "no"))
	must(m.SetOptionString("volume", fmt.Sprintf("%d", volume)))

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &MPVPlayer{m: m}
	go p.eventLoop()
	return p, nil
}

func must(err error) {
	if err != nil {
		log.Printf("mpv option warning: %v", err)
	}
}

// Play loads ref, replacing anything still playing, and waits for it to end.
func (p *MPVPlayer) Play(ctx context.Context, ref string) error {
	p.mu.Lock()
	done := p.pb.begin()
	if err := p.m.Command([]string{"loadfile", ref}); err != nil {
		p.pb.abort()
		p.mu.Unlock()
		return fmt.Errorf("loadfile: %w", err)
	}
	p.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		p.Stop()
		return ctx.Err()
	}
}

// Stop stops playback.
func (p *MPVPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pb.release()
	return p.m.Command([]string{"stop"})
}

// Close destroys the mpv instance.
func (p *MPVPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pb.release()
	p.m.TerminateDestroy()
	return nil
}

func (p *MPVPlayer) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventStart:
			p.mu.Lock()
			p.pb.start()
			p.mu.Unlock()

		case mpv.EventEnd:
			p.mu.Lock()
			p.pb.end()
			p.mu.Unlock()

		case mpv.EventShutdown:
			return
		}
	}
}
