package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate      = beep.SampleRate(48000)
	resampleQuality = 4
)

// ErrUnsupportedFormat is returned for clips that are neither Ogg Vorbis nor WAV.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// BeepPlayer decodes clips in-process and plays them on the system speaker.
type BeepPlayer struct {
	client *http.Client
	volume int

	initOnce sync.Once
	initErr  error
}

// NewBeepPlayer creates a player. volume is a percentage; 100 is unity gain.
// The speaker is opened lazily on first playback.
func NewBeepPlayer(volume int) *BeepPlayer {
	return &BeepPlayer{
		client: httpClient,
		volume: volume,
	}
}

func (p *BeepPlayer) initSpeaker() error {
	p.initOnce.Do(func() {
		p.initErr = speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	})
	return p.initErr
}

// Play fetches, decodes and plays the clip at ref.
func (p *BeepPlayer) Play(ctx context.Context, ref string) error {
	data, err := fetch(ctx, p.client, ref)
	if err != nil {
		return err
	}
	streamer, format, err := decodeClip(data)
	if err != nil {
		return fmt.Errorf("%s: %w", ref, err)
	}
	defer streamer.Close()

	if err := p.initSpeaker(); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
	}
	s = withVolume(s, p.volume)

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// Close stops anything still playing. The speaker itself stays open.
func (p *BeepPlayer) Close() error {
	p.initOnce.Do(func() {
		p.initErr = errors.New("player closed")
	})
	if p.initErr == nil {
		speaker.Clear()
	}
	return nil
}

// decodeClip sniffs the container and returns a decoded stream.
func decodeClip(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	switch {
	case bytes.HasPrefix(data, []byte("OggS")):
		return vorbis.Decode(io.NopCloser(bytes.NewReader(data)))
	case bytes.HasPrefix(data, []byte("RIFF")):
		return wav.Decode(bytes.NewReader(data))
	default:
		return nil, beep.Format{}, ErrUnsupportedFormat
	}
}

// withVolume scales s by a percentage on a log2 scale.
func withVolume(s beep.Streamer, percent int) beep.Streamer {
	if percent == 100 {
		return s
	}
	v := &effects.Volume{Streamer: s, Base: 2}
	if percent <= 0 {
		v.Silent = true
	} else {
		v.Volume = math.Log2(float64(percent) / 100)
	}
	return v
}
