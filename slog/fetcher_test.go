package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/mock"
	docsearchslog "github.com/chinng-inta/gemini-file-search-tool/slog"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))

	f := docsearchslog.NewLoggingFetcher(&mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html>ok</html>", nil
		},
	}, logger)

	html, err := f.Fetch(context.Background(), "https://example.com/docs")
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", html)
	assert.Contains(t, buf.String(), "https://example.com/docs")
	assert.Contains(t, buf.String(), "duration")
}

func TestLoggingFileSearchService_PropagatesErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	s := docsearchslog.NewLoggingFileSearchService(&mock.FileSearchService{
		CreateStoreFn: func(ctx context.Context, displayName string) (string, error) {
			return "", docsearch.Errorf(docsearch.EUNAUTHORIZED, "invalid api key")
		},
	}, logger)

	_, err := s.CreateStore(context.Background(), "gas-20260801")
	require.Error(t, err)
	assert.Equal(t, docsearch.EUNAUTHORIZED, docsearch.ErrorCode(err))
	assert.Contains(t, buf.String(), "invalid api key")
}
