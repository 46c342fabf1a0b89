// Package http implements outbound HTTP services using net/http.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// DefaultFetchTimeout bounds a single page fetch.
const DefaultFetchTimeout = 30 * time.Second

const defaultUserAgent = "docsearch/1.0"

// maxBodyBytes caps how much of a response is read. Documentation pages
// beyond this are truncated rather than failing the crawl.
const maxBodyBytes = 10 << 20

var _ docsearch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw HTML over plain HTTP. Response statuses are mapped
// to error codes so the crawl engine and retry utility can distinguish
// transient failures from permanent ones.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a fetcher with the default timeout.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch implements docsearch.Fetcher.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", docsearch.Errorf(docsearch.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, url); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "read %s: %v", url, err)
	}
	return string(body), nil
}

// Close implements docsearch.Fetcher.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// statusError maps a non-2xx HTTP status to a coded error. Rate limits and
// server errors are transient; client errors are not.
func statusError(status int, url string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return docsearch.Errorf(docsearch.EUNAUTHORIZED, "fetch %s: status %d", url, status)
	case status == http.StatusNotFound:
		return docsearch.Errorf(docsearch.ENOTFOUND, "fetch %s: status %d", url, status)
	case status == http.StatusTooManyRequests || status >= 500:
		return docsearch.Errorf(docsearch.EUNAVAILABLE, "fetch %s: status %d", url, status)
	default:
		return docsearch.Errorf(docsearch.EINTERNAL, "fetch %s: unexpected status %d", url, status)
	}
}
