package docsearch

import "time"

// Default crawl bounds, applied when a CrawlTarget leaves them unset.
const (
	DefaultMaxDepth = 3
	DefaultMaxPages = 100
	DefaultDelay    = 1 * time.Second
)

// Target is a registered documentation site that can be crawled by keyword.
type Target struct {
	// Keyword doubles as the document type under which artifacts and
	// retrieval stores are organized.
	Keyword     string `json:"keyword"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// CrawlTarget describes one crawl invocation. It is created per run and
// never mutated, so concurrent runs cannot interfere through shared state.
type CrawlTarget struct {
	DocType  string
	RootURL  string
	MaxDepth int
	MaxPages int

	// Delay is the minimum interval between successive fetches within
	// this run. Zero means the default; a negative value disables the
	// delay entirely.
	Delay time.Duration
}

// WithDefaults returns a copy with unset bounds replaced by defaults.
func (t CrawlTarget) WithDefaults() CrawlTarget {
	if t.MaxDepth <= 0 {
		t.MaxDepth = DefaultMaxDepth
	}
	if t.MaxPages <= 0 {
		t.MaxPages = DefaultMaxPages
	}
	if t.Delay == 0 {
		t.Delay = DefaultDelay
	}
	return t
}

// TargetResolver resolves a keyword or literal URL into a crawl target.
type TargetResolver interface {
	// Resolve maps a keyword (exact match, then case-insensitive, then
	// unique substring) or an http(s) URL to a Target. Ambiguous keywords
	// return ECONFLICT; unknown keywords return ENOTFOUND.
	Resolve(keywordOrURL string) (*Target, error)

	// List returns all registered targets sorted by keyword.
	List() ([]*Target, error)
}
