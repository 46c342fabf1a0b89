// Package trafilatura implements main-content extraction with
// github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor strips navigation, sidebars and footers from documentation
// pages, keeping the article body. When trafilatura finds no content the
// optional Fallback extractor gets a try before giving up.
type Extractor struct {
	Fallback docsearch.Extractor
}

// NewExtractor creates an extractor with the given fallback. A nil fallback
// is allowed.
func NewExtractor(fallback docsearch.Extractor) *Extractor {
	return &Extractor{Fallback: fallback}
}

// Extract implements docsearch.Extractor.
func (e *Extractor) Extract(rawHTML string) (*docsearch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return e.fallback(rawHTML, err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(contentHTML) == "" {
		return e.fallback(rawHTML, docsearch.Errorf(docsearch.ENOTFOUND, "no main content found"))
	}

	return &docsearch.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func (e *Extractor) fallback(rawHTML string, cause error) (*docsearch.ExtractResult, error) {
	if e.Fallback == nil {
		return nil, cause
	}
	return e.Fallback.Extract(rawHTML)
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
