package apkindex

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/specialistvlad/depvis/internal/ctxlog"
)

const indexFile = "APKINDEX.tar.gz"

// Fetch downloads the compressed index from the repository base URL, e.g.
// https://dl-cdn.alpinelinux.org/alpine/v3.20/main/x86_64/. Transient HTTP
// failures are retried with backoff before giving up.
func Fetch(ctx context.Context, repoURL string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	url := repoURL
	if url == "" {
		return nil, fmt.Errorf("repository URL is empty")
	}
	if url[len(url)-1] != '/' {
		url += "/"
	}
	url += indexFile
	logger.Debug("Downloading package index.", "url", url)

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 3

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid index URL %q: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read index body: %w", err)
	}
	logger.Debug("Package index downloaded.", "bytes", len(data))
	return data, nil
}
