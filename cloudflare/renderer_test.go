package cloudflare_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/cloudflare"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/acc-123/browser-rendering/content", r.URL.Path)
		assert.Equal(t, "Bearer tok-456", r.Header.Get("Authorization"))

		var req struct {
			URL string `json:"url"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com/app", req.URL)

		fmt.Fprint(w, `{"success":true,"result":"<html>rendered</html>"}`)
	}))
	defer srv.Close()

	r := cloudflare.NewRenderer("acc-123", "tok-456", cloudflare.WithBaseURL(srv.URL))
	defer r.Close()

	html, err := r.Render(context.Background(), "https://example.com/app")
	require.NoError(t, err)
	assert.Equal(t, "<html>rendered</html>", html)
}

func TestRenderer_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"bad token", http.StatusUnauthorized, docsearch.EUNAUTHORIZED},
		{"forbidden", http.StatusForbidden, docsearch.EUNAUTHORIZED},
		{"rate limited", http.StatusTooManyRequests, docsearch.EUNAVAILABLE},
		{"server error", http.StatusInternalServerError, docsearch.EUNAVAILABLE},
		{"bad request", http.StatusBadRequest, docsearch.EINVALID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			r := cloudflare.NewRenderer("acc", "tok", cloudflare.WithBaseURL(srv.URL))
			defer r.Close()

			_, err := r.Render(context.Background(), "https://example.com/app")
			require.Error(t, err)
			assert.Equal(t, tt.want, docsearch.ErrorCode(err))
		})
	}
}

func TestRenderer_APILevelFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"errors":[{"code":1001,"message":"navigation timed out"}]}`)
	}))
	defer srv.Close()

	r := cloudflare.NewRenderer("acc", "tok", cloudflare.WithBaseURL(srv.URL))
	defer r.Close()

	_, err := r.Render(context.Background(), "https://example.com/app")
	require.Error(t, err)
	assert.True(t, docsearch.Transient(err))
	assert.Contains(t, docsearch.ErrorMessage(err), "navigation timed out")
}

func TestRenderer_EmptyResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"result":""}`)
	}))
	defer srv.Close()

	r := cloudflare.NewRenderer("acc", "tok", cloudflare.WithBaseURL(srv.URL))
	defer r.Close()

	_, err := r.Render(context.Background(), "https://example.com/app")
	require.Error(t, err)
	assert.True(t, docsearch.Transient(err))
}
