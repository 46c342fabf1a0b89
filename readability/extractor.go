// Package readability implements main-content extraction with
// github.com/go-shiori/go-readability.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor applies the readability algorithm to isolate article content.
// It is the fallback behind the trafilatura extractor but works standalone.
type Extractor struct{}

// NewExtractor creates an extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements docsearch.Extractor.
func (e *Extractor) Extract(rawHTML string) (*docsearch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.ENOTFOUND, "extract content: %v", err)
	}

	return &docsearch.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
