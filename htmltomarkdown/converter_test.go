package htmltomarkdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinng-inta/gemini-file-search-tool/htmltomarkdown"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert(`<h1>Usage</h1><p>Call <code>Run</code> with a <a href="https://example.com">config</a>.</p>`)
	require.NoError(t, err)
	assert.Contains(t, md, "# Usage")
	assert.Contains(t, md, "`Run`")
	assert.Contains(t, md, "[config](https://example.com)")
}

func TestConverter_Tables(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert(`<table><tr><th>Flag</th><th>Default</th></tr><tr><td>depth</td><td>3</td></tr></table>`)
	require.NoError(t, err)
	assert.Contains(t, md, "| Flag | Default |")
	assert.Contains(t, md, "| depth | 3 |")
}

func TestConverter_EmptyInput(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert(" \n ")
	require.NoError(t, err)
	assert.Empty(t, md)
}
