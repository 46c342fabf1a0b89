package mock

import (
	"context"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docsearch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ docsearch.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docsearch.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string) (string, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	return r.RenderFn(ctx, url)
}

func (r *Renderer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}
