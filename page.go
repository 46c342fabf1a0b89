package docsearch

import "context"

// RenderMode records how a page's content was obtained.
type RenderMode string

// Render modes for fetched pages.
const (
	// ModeStatic means the content is the raw HTML from a plain HTTP GET.
	ModeStatic RenderMode = "static"

	// ModeRendered means the content was produced by a managed render
	// capability that executed client-side JavaScript.
	ModeRendered RenderMode = "rendered"
)

// Page is the result of fetching a single URL during a crawl run.
type Page struct {
	URL     string
	Depth   int
	HTML    string
	Mode    RenderMode
	Links   []string
	TextLen int
}

// Fetcher retrieves raw HTML from URLs over plain HTTP.
// It does not execute JavaScript.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Renderer retrieves fully rendered HTML from URLs. Implementations execute
// client-side JavaScript, either through a managed remote service or a local
// browser.
type Renderer interface {
	// Render navigates to the URL, waits for the page to render, and
	// returns the rendered HTML.
	Render(ctx context.Context, url string) (html string, err error)

	// Close releases renderer resources.
	Close() error
}

// Classification is the outcome of dynamic-page detection.
type Classification struct {
	// Dynamic is true when the page needs JavaScript rendering to produce
	// its content: a known front-end framework marker is present AND the
	// visible text is below the classifier's threshold.
	Dynamic bool

	// Frameworks lists the front-end frameworks detected in the markup.
	Frameworks []string

	// TextLen is the length of the visible text, with script and style
	// content stripped.
	TextLen int
}

// Classifier decides whether a statically fetched page is dynamic.
type Classifier interface {
	Classify(html string) Classification
}

// LinkExtractor extracts same-host links from HTML for crawl expansion.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns absolute URLs found in anchors.
	// Relative URLs are resolved against baseURL; fragments are stripped;
	// links to other hosts are dropped.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
