package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/customHttpClient"
)

var downloadClient = customHttpClient.New(config.DownloadTimeout)

// FetchToTemp downloads fileURL into a temporary file and returns its
// path. The caller owns the file and must remove it on every exit path.
func FetchToTemp(ctx context.Context, fileURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("building download request: %w", err)
	}

	resp, err := downloadClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading document: unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "documind-*"+suffixFor(fileURL))
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return tmp.Name(), nil
}

// suffixFor keeps the source extension so extraction can dispatch on
// it. Signed URLs carry query params, so parse before taking the ext.
func suffixFor(fileURL string) string {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return ".pdf"
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	switch ext {
	case ".pdf", ".docx", ".txt", ".rtf", ".odt":
		return ext
	default:
		return ".pdf"
	}
}
