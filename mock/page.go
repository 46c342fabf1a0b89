package mock

import (
	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of docsearch.Classifier.
type Classifier struct {
	ClassifyFn func(html string) docsearch.Classification
}

func (c *Classifier) Classify(html string) docsearch.Classification {
	return c.ClassifyFn(html)
}

var _ docsearch.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docsearch.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docsearch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docsearch.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docsearch.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ docsearch.Converter = (*Converter)(nil)

// Converter is a mock implementation of docsearch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
