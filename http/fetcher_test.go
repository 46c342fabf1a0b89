package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	docsearchhttp "github.com/chinng-inta/gemini-file-search-tool/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	f := docsearchhttp.NewFetcher()
	defer f.Close()

	html, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", html)
}

func TestFetcher_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"unauthorized", http.StatusUnauthorized, docsearch.EUNAUTHORIZED},
		{"forbidden", http.StatusForbidden, docsearch.EUNAUTHORIZED},
		{"not found", http.StatusNotFound, docsearch.ENOTFOUND},
		{"rate limited", http.StatusTooManyRequests, docsearch.EUNAVAILABLE},
		{"server error", http.StatusInternalServerError, docsearch.EUNAVAILABLE},
		{"bad gateway", http.StatusBadGateway, docsearch.EUNAVAILABLE},
		{"teapot", http.StatusTeapot, docsearch.EINTERNAL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			f := docsearchhttp.NewFetcher()
			defer f.Close()

			_, err := f.Fetch(context.Background(), srv.URL)
			require.Error(t, err)
			assert.Equal(t, tt.want, docsearch.ErrorCode(err))
		})
	}
}

func TestFetcher_RetryableStatusesAreTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := docsearchhttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	assert.True(t, docsearch.Transient(err))
}

func TestFetcher_NetworkErrorIsTransient(t *testing.T) {
	t.Parallel()

	f := docsearchhttp.NewFetcher(docsearchhttp.WithTimeout(time.Second))
	defer f.Close()

	// Reserved TEST-NET-1 address, nothing listens there.
	_, err := f.Fetch(context.Background(), "http://192.0.2.1:9/")
	require.Error(t, err)
	assert.True(t, docsearch.Transient(err))
}

func TestFetcher_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second)
	}))
	defer srv.Close()

	f := docsearchhttp.NewFetcher()
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := f.Fetch(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
