package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// maxConcurrentDownloads bounds the number of sprites fetched at once.
const maxConcurrentDownloads = 6

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache provides disk + memory caching for sprite images.
type ImageCache struct {
	cacheDir   string
	httpClient *http.Client
	memory     sync.Map // ref -> image.Image
	loading    singleflight.Group
	sem        *semaphore.Weighted
}

// NewImageCache creates a new image cache with the given disk directory.
func NewImageCache(cacheDir string) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir:   cacheDir,
		httpClient: httpClient,
		sem:        semaphore.NewWeighted(maxConcurrentDownloads),
	}, nil
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(ref string) image.Image {
	if v, ok := ic.memory.Load(ref); ok {
		return v.(image.Image)
	}
	return nil
}

// LoadImage returns the image at ref, or nil if it cannot be loaded.
// Failures are logged. An empty ref yields nil.
func (ic *ImageCache) LoadImage(ctx context.Context, ref string) image.Image {
	if ref == "" {
		return nil
	}
	img, err := ic.LoadDecodedImage(ctx, ref)
	if err != nil {
		log.Printf("Failed to load image %s: %v", ref, err)
		return nil
	}
	return img
}

// LoadDecodedImage returns the image at ref, consulting the memory and disk
// caches first. Concurrent loads of the same ref share one download, which
// outlives any single caller's ctx; each caller stops waiting when its own
// ctx ends.
func (ic *ImageCache) LoadDecodedImage(ctx context.Context, ref string) (image.Image, error) {
	if img := ic.Get(ref); img != nil {
		return img, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := ic.loading.DoChan(ref, func() (interface{}, error) {
		img, err := ic.loadImage(shared, ref)
		if err != nil {
			return nil, err
		}
		ic.memory.Store(ref, img)
		return img, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(image.Image), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (ic *ImageCache) loadImage(ctx context.Context, ref string) (image.Image, error) {
	if path, ok := localPath(ref); ok {
		return decodeFile(path)
	}

	diskPath := ic.diskPath(ref)

	// Try disk cache first
	if img, err := decodeFile(diskPath); err == nil {
		return img, nil
	} else if !os.IsNotExist(err) {
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	if err := ic.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer ic.sem.Release(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := ic.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}

	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// localPath reports whether ref names a file on disk rather than a remote URL.
func localPath(ref string) (string, bool) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return "", false
	}
	if strings.HasPrefix(ref, "file://") {
		u, err := url.Parse(ref)
		if err != nil {
			return strings.TrimPrefix(ref, "file://"), true
		}
		return u.Path, true
	}
	return ref, true
}

func (ic *ImageCache) diskPath(ref string) string {
	h := sha256.Sum256([]byte(ref))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear removes all cached images from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
