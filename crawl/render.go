package crawl

import (
	"context"
	"log/slog"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// PageRenderer decides, per page, whether the statically fetched HTML is
// good enough or the page needs a browser render. Rendering is best effort:
// when it fails after retries the static HTML is used and the crawl moves on.
type PageRenderer struct {
	Fetcher    docsearch.Fetcher
	Renderer   docsearch.Renderer
	Classifier docsearch.Classifier

	// Retry policy for the managed renderer.
	RenderAttempts  int
	RenderBaseDelay time.Duration

	Logger *slog.Logger
}

// NewPageRenderer creates a renderer with the default retry policy.
func NewPageRenderer(fetcher docsearch.Fetcher, renderer docsearch.Renderer, classifier docsearch.Classifier, logger *slog.Logger) *PageRenderer {
	return &PageRenderer{
		Fetcher:         fetcher,
		Renderer:        renderer,
		Classifier:      classifier,
		RenderAttempts:  docsearch.DefaultRetryAttempts,
		RenderBaseDelay: docsearch.DefaultRetryBaseDelay,
		Logger:          logger,
	}
}

// Render fetches url statically, classifies the result, and upgrades to a
// browser render only for pages that look like JavaScript shells. A failed
// static fetch is fatal for the page; a failed render is not.
func (r *PageRenderer) Render(ctx context.Context, url string) (*docsearch.Page, error) {
	static, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	c := r.Classifier.Classify(static)
	page := &docsearch.Page{
		URL:     url,
		HTML:    static,
		Mode:    docsearch.ModeStatic,
		TextLen: c.TextLen,
	}
	if !c.Dynamic || r.Renderer == nil {
		return page, nil
	}

	var rendered string
	err = docsearch.Retry(ctx, r.RenderAttempts, r.RenderBaseDelay, func(ctx context.Context) error {
		var rerr error
		rendered, rerr = r.Renderer.Render(ctx, url)
		return rerr
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		r.Logger.Warn("browser render failed, using static html",
			slog.String("url", url),
			slog.Any("frameworks", c.Frameworks),
			slog.String("error", err.Error()),
		)
		return page, nil
	}

	page.HTML = rendered
	page.Mode = docsearch.ModeRendered
	page.TextLen = r.Classifier.Classify(rendered).TextLen
	return page, nil
}
