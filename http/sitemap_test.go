package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	docsearchhttp "github.com/chinng-inta/gemini-file-search-tool/http"
)

const urlsetXML = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%s/docs/intro</loc></url>
  <url><loc>%s/docs/guide</loc></url>
</urlset>`

func TestSitemapService_FallbackSitemapXML(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, urlsetXML, srv.URL, srv.URL)
	})

	urls, err := docsearchhttp.NewSitemapService().DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/docs/intro", srv.URL + "/docs/guide"}, urls)
}

func TestSitemapService_RobotsDirective(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "User-agent: *\nDisallow: /private\nSitemap: %s/custom-map.xml\n", srv.URL)
	})
	mux.HandleFunc("/custom-map.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, urlsetXML, srv.URL, srv.URL)
	})
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		t.Error("fallback must not be used when robots.txt lists a sitemap")
	})

	urls, err := docsearchhttp.NewSitemapService().DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, urls, 2)
}

func TestSitemapService_IndexRecursion(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>%s/sitemap-docs.xml</loc></sitemap>
  <sitemap><loc>%s/sitemap-broken.xml</loc></sitemap>
</sitemapindex>`, srv.URL, srv.URL)
	})
	mux.HandleFunc("/sitemap-docs.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, urlsetXML, srv.URL, srv.URL)
	})
	mux.HandleFunc("/sitemap-broken.xml", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	urls, err := docsearchhttp.NewSitemapService().DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, urls, 2, "broken nested sitemaps are skipped, not fatal")
}

func TestSitemapService_NoSitemap(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := docsearchhttp.NewSitemapService().DiscoverURLs(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
}
