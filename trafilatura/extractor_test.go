package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/mock"
	"github.com/chinng-inta/gemini-file-search-tool/trafilatura"
)

const articleHTML = `<html><head><title>Install Guide</title></head><body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Installation</h1>
<p>` + "Run the installer and follow the prompts. " + `
This guide covers Linux and macOS. Windows users should see the FAQ.
The installer verifies checksums before writing anything to disk.</p>
</article>
<footer>Copyright</footer>
</body></html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	result, err := trafilatura.NewExtractor(nil).Extract(articleHTML)
	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Run the installer")
	assert.NotContains(t, result.ContentHTML, "Copyright")
}

func TestExtractor_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := trafilatura.NewExtractor(nil).Extract("   ")
	require.Error(t, err)
	assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
}

func TestExtractor_FallbackOnNoContent(t *testing.T) {
	t.Parallel()

	called := false
	fallback := &mock.Extractor{
		ExtractFn: func(html string) (*docsearch.ExtractResult, error) {
			called = true
			return &docsearch.ExtractResult{Title: "Fallback", ContentHTML: "<p>rescued</p>"}, nil
		},
	}

	// A page with no extractable article content.
	html := `<html><body>` + strings.Repeat(`<a href="/x">link</a>`, 3) + `</body></html>`
	result, err := trafilatura.NewExtractor(fallback).Extract(html)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "Fallback", result.Title)
}
