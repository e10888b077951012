package cache

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func spriteServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	body := pngBytes(t, color.NRGBA{R: 0xd5, G: 0x3b, B: 0x47, A: 0xff})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadImageCachesInMemoryAndOnDisk(t *testing.T) {
	var hits int32
	srv := spriteServer(t, &hits)
	dir := t.TempDir()
	ctx := context.Background()

	ic, err := NewImageCache(dir)
	require.NoError(t, err)

	img := ic.LoadImage(ctx, srv.URL+"/1.png")
	require.NotNil(t, img)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Same(t, img, ic.Get(srv.URL+"/1.png"))

	require.NotNil(t, ic.LoadImage(ctx, srv.URL+"/1.png"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second load served from memory")

	_, err = os.Stat(ic.diskPath(srv.URL + "/1.png"))
	require.NoError(t, err)

	fresh, err := NewImageCache(dir)
	require.NoError(t, err)
	require.NotNil(t, fresh.LoadImage(ctx, srv.URL+"/1.png"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "new cache served from disk")
}

func TestLoadImageFailuresYieldNil(t *testing.T) {
	var hits int32
	srv := spriteServer(t, &hits)
	ic, err := NewImageCache(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	assert.Nil(t, ic.LoadImage(ctx, ""))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))

	assert.Nil(t, ic.LoadImage(ctx, srv.URL+"/missing.png"))
	_, err = ic.LoadDecodedImage(ctx, srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "404")

	_, err = os.Stat(ic.diskPath(srv.URL + "/missing.png"))
	assert.True(t, os.IsNotExist(err), "failed downloads leave nothing on disk")
}

func TestLoadImageReplacesCorruptDiskEntry(t *testing.T) {
	var hits int32
	srv := spriteServer(t, &hits)
	ic, err := NewImageCache(t.TempDir())
	require.NoError(t, err)

	ref := srv.URL + "/4.png"
	path := ic.diskPath(ref)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	require.NotNil(t, ic.LoadImage(context.Background(), ref))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestLoadImageLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, color.White), 0o644))

	ic, err := NewImageCache(filepath.Join(dir, "cache"))
	require.NoError(t, err)

	assert.NotNil(t, ic.LoadImage(context.Background(), path))
	assert.NotNil(t, ic.LoadImage(context.Background(), "file://"+path))
	assert.Nil(t, ic.LoadImage(context.Background(), filepath.Join(dir, "nope.png")))
}

func TestLoadImageConcurrentCallersShareDownload(t *testing.T) {
	var hits int32
	srv := spriteServer(t, &hits)
	ic, err := NewImageCache(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NotNil(t, ic.LoadImage(context.Background(), srv.URL+"/7.png"))
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt32(&hits), int32(8))
	assert.NotNil(t, ic.Get(srv.URL+"/7.png"))
}

func TestClear(t *testing.T) {
	var hits int32
	srv := spriteServer(t, &hits)
	ic, err := NewImageCache(t.TempDir())
	require.NoError(t, err)

	require.NotNil(t, ic.LoadImage(context.Background(), srv.URL+"/1.png"))
	ic.Clear()
	assert.Nil(t, ic.Get(srv.URL+"/1.png"))

	require.NoError(t, ic.ClearDisk())
	_, err = os.Stat(ic.CacheDir())
	assert.True(t, os.IsNotExist(err))
}

func TestLoadImageCancelledCallerDoesNotFailOthers(t *testing.T) {
	body := pngBytes(t, color.NRGBA{R: 0x38, G: 0x98, B: 0xfe, A: 0xff})
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case arrived <- struct{}{}:
		default:
		}
		<-release
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() {
		select {
		case <-release:
		default:
			close(release)
		}
	})

	ic, err := NewImageCache(t.TempDir())
	require.NoError(t, err)
	ref := srv.URL + "/25.png"

	ctxA, cancelA := context.WithCancel(context.Background())
	resultA := make(chan image.Image, 1)
	go func() { resultA <- ic.LoadImage(ctxA, ref) }()
	<-arrived

	type result struct {
		img image.Image
		err error
	}
	resultB := make(chan result, 1)
	go func() {
		img, err := ic.LoadDecodedImage(context.Background(), ref)
		resultB <- result{img, err}
	}()

	cancelA()
	assert.Nil(t, <-resultA, "cancelled caller gives up")

	close(release)
	b := <-resultB
	require.NoError(t, b.err)
	require.NotNil(t, b.img)
	assert.Same(t, b.img, ic.Get(ref))
}
