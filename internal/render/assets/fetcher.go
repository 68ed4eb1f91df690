package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// maxImageBytes caps one fetched asset. Badge art past this size is almost
// certainly a misconfigured URL.
const maxImageBytes = 10 << 20

// Image is a fetched, type-sniffed asset ready for embedding.
type Image struct {
	Bytes  []byte
	Format string // "PNG" or "JPG", matching the PDF encoder's type names
}

// ImageFetcher is the narrow port the renderer depends on, keeping the SSRF
// guard and timeout policy testable apart from compositing concerns.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Image, error)
}

// Fetcher retrieves external images over HTTPS with SSRF guarding, a bounded
// per-fetch timeout, and a per-host circuit breaker.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	breaker *breaker
}

// NewFetcher constructs a Fetcher. A zero timeout falls back to 5s; an
// unbounded fetch would let one slow host stall the whole render.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		breaker: newBreaker(),
	}
}

// Fetch validates, retrieves, and sniffs one image. Every error return is a
// soft failure: the caller logs, omits the image, and keeps rendering.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Image, error) {
	if err := CheckURL(rawURL); err != nil {
		return nil, err
	}

	host := hostOf(rawURL)
	if !f.breaker.allow(host) {
		return nil, fmt.Errorf("image host %q circuit is open", host)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.breaker.recordFailure(host)
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.breaker.recordFailure(host)
		return nil, fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		f.breaker.recordFailure(host)
		return nil, fmt.Errorf("read image body: %w", err)
	}
	f.breaker.recordSuccess(host)

	format, err := SniffFormat(data)
	if err != nil {
		return nil, err
	}
	return &Image{Bytes: data, Format: format}, nil
}

// SniffFormat identifies the image type by magic bytes. Anything but PNG and
// JPEG is skipped; the renderer embeds nothing rather than guessing.
func SniffFormat(data []byte) (string, error) {
	switch {
	case len(data) >= 2 && bytes.Equal(data[:2], []byte{0x89, 0x50}):
		return "PNG", nil
	case len(data) >= 2 && bytes.Equal(data[:2], []byte{0xFF, 0xD8}):
		return "JPG", nil
	}
	return "", fmt.Errorf("unrecognized image signature")
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Hostname()
}
