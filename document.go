package docsearch

import (
	"context"
	"time"
)

// Document is a crawled documentation page converted to Markdown.
// It is owned by the crawl engine until written, then by the document store.
type Document struct {
	DocType   string    `json:"docType"`
	SourceURL string    `json:"sourceUrl"`
	Title     string    `json:"title"`
	Content   string    `json:"content"` // Markdown
	FilePath  string    `json:"filePath"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.DocType == "" {
		return Errorf(EINVALID, "document type required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// DocumentWriter persists document artifacts. Implementations set
// doc.FilePath to the location the artifact was written to.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into Markdown.
	Convert(html string) (string, error)
}
