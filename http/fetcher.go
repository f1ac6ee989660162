// Package http implements docboost.Fetcher and docboost.SitemapService over
// plain HTTP. Pages are fetched without JavaScript rendering, which suits the
// statically generated API documentation sites docboost indexes.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docboost"
)

// Fetch defaults.
const (
	DefaultFetchTimeout = docboost.DefaultAPITimeout
	DefaultUserAgent    = "docboost/1.0 (+documentation indexer)"

	// DefaultMaxBodySize bounds how much of a single page is read.
	DefaultMaxBodySize = 10 << 20
)

var _ docboost.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML with GET requests.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize limits the number of bytes read from a response body.
// Larger bodies are rejected.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher returns a Fetcher with defaults applied before opts.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch returns the body of the page at url. Any status other than 200 is an
// error that names the status code.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, url); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(body)) > f.maxBodySize {
		return "", docboost.Errorf(docboost.EINVALID, "response from %s exceeds %d bytes", url, f.maxBodySize)
	}

	return string(body), nil
}

// statusError maps a non-200 status to an error. Client errors other than 429
// are application errors; everything else stays a plain error.
func statusError(code int, url string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound || code == http.StatusGone:
		return docboost.Errorf(docboost.ENOTFOUND, "HTTP %d for %s", code, url)
	case code == http.StatusTooManyRequests || code >= 500:
		return fmt.Errorf("HTTP %d for %s", code, url)
	case code >= 400:
		return docboost.Errorf(docboost.EINVALID, "HTTP %d for %s", code, url)
	default:
		return fmt.Errorf("HTTP %d for %s", code, url)
	}
}

// Close is a no-op; the underlying http.Client holds no resources that need
// releasing.
func (f *Fetcher) Close() error {
	return nil
}
