package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// maxClipBytes caps the size of a downloaded clip. Cries are a few KB.
const maxClipBytes = 8 << 20

var httpClient = &http.Client{Timeout: 15 * time.Second}

// fetch reads the clip at ref, which is an http(s) URL, a file:// URL or a path.
func fetch(ctx context.Context, client *http.Client, ref string) ([]byte, error) {
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		path := ref
		if strings.HasPrefix(ref, "file://") {
			if u, err := url.Parse(ref); err == nil {
				path = u.Path
			}
		}
		return os.ReadFile(path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clip download failed: %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxClipBytes))
}
