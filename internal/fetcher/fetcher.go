// Package fetcher loads comparison inputs from local files or HTTP(S) URLs
// and decodes them into lines of valid UTF-8 text.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/errorwrapper"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

// Fetcher retrieves comparison inputs. A single instance is safe for
// concurrent use; the underlying http.Client is shared.
type Fetcher struct {
	client    *http.Client
	maxBytes  int64
	userAgent string
	logger    zerolog.Logger
}

// NewFetcher creates a Fetcher from configuration, applying defaults for
// any zero-valued fields.
func NewFetcher(cfg config.FetcherConfig, logger zerolog.Logger) *Fetcher {
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = config.DefaultFetchTimeoutSeconds
	}
	if cfg.MaxInputSizeMB <= 0 {
		cfg.MaxInputSizeMB = config.DefaultMaxFetchSizeMB
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "ultidiff"
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		maxBytes:  int64(cfg.MaxInputSizeMB) * 1024 * 1024,
		userAgent: cfg.UserAgent,
		logger:    logger.With().Str("component", "Fetcher").Logger(),
	}
}

// LoadFile reads a local file and decodes it into lines.
func (f *Fetcher) LoadFile(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to stat input file %s", path))
	}
	if info.Size() > f.maxBytes {
		return nil, errorwrapper.NewError("input file %s exceeds maximum size of %d bytes", path, f.maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to read input file %s", path))
	}

	f.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Loaded input file")
	return SplitLines(DecodeText(data)), nil
}

// FetchURL downloads the content at an http or https URL and decodes it
// into lines. The response charset is honored when declared; otherwise the
// body goes through the same UTF-8-with-fallback decoding as local files.
func (f *Fetcher) FetchURL(ctx context.Context, rawURL string) ([]string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, errorwrapper.NewNetworkError(rawURL, "invalid URL", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errorwrapper.NewNetworkError(rawURL, fmt.Sprintf("unsupported URL scheme %q", parsed.Scheme), nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errorwrapper.NewNetworkError(rawURL, "failed to build request", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errorwrapper.NewNetworkError(rawURL, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorwrapper.NewNetworkError(rawURL, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBytes+1), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, errorwrapper.NewNetworkError(rawURL, "failed to detect response charset", err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errorwrapper.NewNetworkError(rawURL, "failed to read response body", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, errorwrapper.NewNetworkError(rawURL, fmt.Sprintf("response exceeds maximum size of %d bytes", f.maxBytes), nil)
	}

	f.logger.Debug().Str("url", rawURL).Int("bytes", len(data)).Msg("Fetched input URL")
	return SplitLines(DecodeText(data)), nil
}

// SplitLines divides decoded text into lines without trailing newline
// characters. A trailing newline does not produce a final empty line, so
// round-tripping through a patch export stays stable.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
