package docsearch

import "context"

// SitemapService discovers documentation URLs from a site's sitemap.
// The crawl engine uses discovered URLs to pre-seed its frontier; sites
// without a sitemap fall back to pure link-following.
type SitemapService interface {
	// DiscoverURLs finds URLs from the site's sitemap, checking robots.txt
	// for sitemap directives and falling back to /sitemap.xml. Sitemap
	// indexes are resolved recursively. Results are unfiltered; callers
	// apply their own scope rules.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
