package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// PageSource produces the final HTML for a URL, choosing between static and
// rendered content. *PageRenderer is the production implementation.
type PageSource interface {
	Render(ctx context.Context, url string) (*docsearch.Page, error)
}

// Result summarizes one finished crawl run.
type Result struct {
	DocType string
	RootURL string
	Saved   int
	Failed  int
	Paths   []string
}

// Engine walks a documentation site breadth-first from a root URL, converting
// each page to a Markdown artifact. Individual page failures are counted and
// skipped; only context cancellation aborts a run.
type Engine struct {
	Pages     PageSource
	Extractor docsearch.Extractor
	Converter docsearch.Converter
	Links     docsearch.LinkExtractor
	Writer    docsearch.DocumentWriter

	// Sitemaps optionally seeds the frontier from the site's sitemap.
	// Nil disables seeding.
	Sitemaps docsearch.SitemapService

	// Runs optionally records finished runs. Nil disables history.
	Runs docsearch.RunService

	Logger *slog.Logger
}

// Crawl runs one crawl described by target. It returns EINVALID for an
// unusable root URL and otherwise reports per-page failures through the
// result rather than an error.
func (e *Engine) Crawl(ctx context.Context, target docsearch.CrawlTarget) (*Result, error) {
	target = target.WithDefaults()

	root, err := url.Parse(target.RootURL)
	if err != nil || root.Host == "" || (root.Scheme != "http" && root.Scheme != "https") {
		return nil, docsearch.Errorf(docsearch.EINVALID, "invalid root URL %q", target.RootURL)
	}

	started := time.Now().UTC()
	limiter := NewRunLimiter(target.Delay)
	frontier := NewFrontier()
	frontier.Push(target.RootURL, 0)
	e.seedFromSitemap(ctx, root, frontier)

	result := &Result{DocType: target.DocType, RootURL: target.RootURL}
	for result.Saved < target.MaxPages {
		item, ok := frontier.Pop()
		if !ok {
			break
		}

		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}

		page, err := e.Pages.Render(ctx, item.URL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			result.Failed++
			e.Logger.Warn("page fetch failed",
				slog.String("url", item.URL),
				slog.String("error", err.Error()),
			)
			continue
		}
		page.Depth = item.Depth

		if item.Depth < target.MaxDepth {
			e.expand(root, page, frontier)
		}

		doc, err := e.convert(target.DocType, page)
		if err != nil {
			result.Failed++
			e.Logger.Warn("page conversion failed",
				slog.String("url", item.URL),
				slog.String("error", err.Error()),
			)
			continue
		}
		if doc == nil {
			e.Logger.Debug("page has no content, skipping", slog.String("url", item.URL))
			continue
		}

		if err := e.Writer.CreateDocument(ctx, doc); err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			result.Failed++
			e.Logger.Warn("artifact write failed",
				slog.String("url", item.URL),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Saved++
		result.Paths = append(result.Paths, doc.FilePath)
	}

	e.recordRun(ctx, target, result, started)
	return result, nil
}

// seedFromSitemap pushes in-scope sitemap URLs at depth zero. Discovery
// failures are logged and ignored; the root URL alone still drives the run.
func (e *Engine) seedFromSitemap(ctx context.Context, root *url.URL, frontier *Frontier) {
	if e.Sitemaps == nil {
		return
	}
	urls, err := e.Sitemaps.DiscoverURLs(ctx, root.Scheme+"://"+root.Host)
	if err != nil {
		e.Logger.Debug("sitemap discovery failed",
			slog.String("host", root.Host),
			slog.String("error", err.Error()),
		)
		return
	}
	seeded := 0
	for _, u := range urls {
		if InScope(root, u) && frontier.Push(u, 0) {
			seeded++
		}
	}
	if seeded > 0 {
		e.Logger.Info("seeded frontier from sitemap",
			slog.String("host", root.Host),
			slog.Int("urls", seeded),
		)
	}
}

// expand pushes the page's in-scope links one level deeper.
func (e *Engine) expand(root *url.URL, page *docsearch.Page, frontier *Frontier) {
	links, err := e.Links.ExtractLinks(page.HTML, page.URL)
	if err != nil {
		e.Logger.Debug("link extraction failed",
			slog.String("url", page.URL),
			slog.String("error", err.Error()),
		)
		return
	}
	page.Links = links
	for _, link := range links {
		if InScope(root, link) {
			frontier.Push(link, page.Depth+1)
		}
	}
}

// convert turns a page into a document. A nil document with nil error means
// the page had no usable content.
func (e *Engine) convert(docType string, page *docsearch.Page) (*docsearch.Document, error) {
	extracted, err := e.Extractor.Extract(page.HTML)
	if err != nil {
		return nil, err
	}
	markdown, err := e.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(markdown) == "" {
		return nil, nil
	}
	return &docsearch.Document{
		DocType:   docType,
		SourceURL: page.URL,
		Title:     extracted.Title,
		Content:   markdown,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// recordRun persists run history on a best effort basis.
func (e *Engine) recordRun(ctx context.Context, target docsearch.CrawlTarget, result *Result, started time.Time) {
	if e.Runs == nil {
		return
	}
	run := &docsearch.Run{
		DocType:    target.DocType,
		RootURL:    target.RootURL,
		Saved:      result.Saved,
		Failed:     result.Failed,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	if err := e.Runs.CreateRun(ctx, run); err != nil {
		e.Logger.Warn("run history write failed",
			slog.String("docType", target.DocType),
			slog.String("error", err.Error()),
		)
	}
}
