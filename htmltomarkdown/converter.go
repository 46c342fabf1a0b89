// Package htmltomarkdown implements Markdown conversion with
// github.com/JohannesKaufmann/html-to-markdown/v2.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.Converter = (*Converter)(nil)

// Converter turns extracted HTML into CommonMark with table support, the
// format the retrieval service indexes best.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert implements docsearch.Converter. Whitespace-only input returns an
// empty string rather than an error so the crawl engine can skip the page.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	return c.conv.ConvertString(html)
}
