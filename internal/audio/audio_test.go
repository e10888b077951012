package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/pokedex/internal/config"
)

// wavClip builds a mono 16-bit PCM WAV file with n silent samples.
func wavClip(rate, n int) []byte {
	var buf bytes.Buffer
	dataLen := n * 2
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(rate))
	binary.Write(&buf, binary.LittleEndian, uint32(rate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))
	return buf.Bytes()
}

func TestNewSelectsBackend(t *testing.T) {
	p, err := New(config.AudioConfig{Backend: config.BackendNone})
	require.NoError(t, err)
	assert.IsType(t, Silent{}, p)
	assert.NoError(t, p.Play(context.Background(), "anything.ogg"))
	assert.NoError(t, p.Close())

	p, err = New(config.AudioConfig{Backend: config.BackendBeep, Volume: 80})
	require.NoError(t, err)
	require.IsType(t, &BeepPlayer{}, p)
	assert.Equal(t, 80, p.(*BeepPlayer).volume)

	_, err = New(config.AudioConfig{Backend: "gramophone"})
	assert.ErrorContains(t, err, "gramophone")
}

func TestDecodeClipWAV(t *testing.T) {
	s, format, err := decodeClip(wavClip(22050, 64))
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, beep.SampleRate(22050), format.SampleRate)
	assert.Equal(t, 1, format.NumChannels)
	assert.Equal(t, 64, s.Len())
}

func TestDecodeClipRejectsUnknownFormats(t *testing.T) {
	_, _, err := decodeClip([]byte("ID3\x03 not an mp3 decoder"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, _, err = decodeClip(nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1.ogg" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("OggS..."))
	}))
	defer srv.Close()
	ctx := context.Background()

	data, err := fetch(ctx, srv.Client(), srv.URL+"/1.ogg")
	require.NoError(t, err)
	assert.Equal(t, []byte("OggS..."), data)

	_, err = fetch(ctx, srv.Client(), srv.URL+"/2.ogg")
	assert.ErrorContains(t, err, "404")

	path := filepath.Join(t.TempDir(), "cry.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))
	data, err = fetch(ctx, srv.Client(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), data)
}

func TestBeepPlayerReportsFetchAndDecodeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/garbage.ogg" {
			w.Write([]byte("garbage"))
			return
		}
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	p := NewBeepPlayer(100)
	p.client = srv.Client()

	err := p.Play(context.Background(), srv.URL+"/gone.ogg")
	assert.ErrorContains(t, err, "410")

	err = p.Play(context.Background(), srv.URL+"/garbage.ogg")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWithVolume(t *testing.T) {
	src := &beep.Ctrl{Streamer: beep.Silence(10)}

	assert.Same(t, src, withVolume(src, 100))

	v, ok := withVolume(src, 0).(*effects.Volume)
	require.True(t, ok)
	assert.True(t, v.Silent)

	v, ok = withVolume(src, 50).(*effects.Volume)
	require.True(t, ok)
	assert.InDelta(t, -1.0, v.Volume, 1e-9)
	assert.Equal(t, 2.0, v.Base)
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestPlaybackEndReleasesLatestLoadOnly(t *testing.T) {
	var pb playback
	first := pb.begin()
	pb.start()

	second := pb.begin()
	assert.True(t, isClosed(first), "a new load releases the previous waiter")

	pb.end() // the first file ending because it was replaced
	assert.False(t, isClosed(second))

	pb.start()
	pb.end()
	assert.True(t, isClosed(second))
}

func TestPlaybackRejectedLoadDoesNotStallLaterOnes(t *testing.T) {
	var pb playback
	rejected := pb.begin()
	pb.abort()
	assert.True(t, isClosed(rejected))

	next := pb.begin()
	pb.start()
	pb.end()
	assert.True(t, isClosed(next), "end-file after a rejected load still releases the waiter")
}
