// Package cloudflare implements browser rendering through the Cloudflare
// Browser Rendering REST API.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// DefaultBaseURL is the Cloudflare API origin.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// DefaultRenderTimeout bounds a single render request. Browser rendering is
// slower than a plain fetch, so this is deliberately generous.
const DefaultRenderTimeout = 60 * time.Second

const maxResultBytes = 10 << 20

var _ docsearch.Renderer = (*Renderer)(nil)

// Renderer renders pages through Cloudflare's managed headless browser.
// A single Render call makes one attempt; callers own the retry policy.
type Renderer struct {
	client    *http.Client
	baseURL   string
	accountID string
	token     string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBaseURL overrides the API origin. Used in tests.
func WithBaseURL(u string) Option {
	return func(r *Renderer) {
		r.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.client.Timeout = d
	}
}

// NewRenderer creates a renderer for the given Cloudflare account.
func NewRenderer(accountID, token string, opts ...Option) *Renderer {
	r := &Renderer{
		client:    &http.Client{Timeout: DefaultRenderTimeout},
		baseURL:   DefaultBaseURL,
		accountID: accountID,
		token:     token,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type contentRequest struct {
	URL string `json:"url"`
}

type contentResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
	Errors  []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Render implements docsearch.Renderer.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	body, err := json.Marshal(contentRequest{URL: url})
	if err != nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "marshal render request: %v", err)
	}

	endpoint := fmt.Sprintf("%s/accounts/%s/browser-rendering/content", r.baseURL, r.accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "build render request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "render %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := renderStatusError(resp.StatusCode, url); err != nil {
		return "", err
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResultBytes))
	if err != nil {
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "read render response: %v", err)
	}

	var out contentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "decode render response: %v", err)
	}
	if !out.Success {
		msg := "render request rejected"
		if len(out.Errors) > 0 {
			msg = out.Errors[0].Message
		}
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "render %s: %s", url, msg)
	}
	if out.Result == "" {
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "render %s: empty result", url)
	}
	return out.Result, nil
}

// Close implements docsearch.Renderer.
func (r *Renderer) Close() error {
	r.client.CloseIdleConnections()
	return nil
}

func renderStatusError(status int, url string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return docsearch.Errorf(docsearch.EUNAUTHORIZED, "render %s: status %d", url, status)
	case status == http.StatusTooManyRequests || status >= 500:
		return docsearch.Errorf(docsearch.EUNAVAILABLE, "render %s: status %d", url, status)
	case status == http.StatusBadRequest:
		return docsearch.Errorf(docsearch.EINVALID, "render %s: status %d", url, status)
	default:
		return docsearch.Errorf(docsearch.EINTERNAL, "render %s: unexpected status %d", url, status)
	}
}
