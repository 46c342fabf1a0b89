package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// Sitemap traversal bounds. Index files nest at most a few levels in
// practice; the URL cap keeps pathological sitemaps from exhausting memory.
const (
	maxSitemapDepth = 3
	maxSitemapURLs  = 5000
)

var _ docsearch.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from a site's sitemap. Sitemap
// locations come from robots.txt when present, with /sitemap.xml as the
// fallback. Index files are followed recursively.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a sitemap service with the default timeout.
func NewSitemapService() *SitemapService {
	return &SitemapService{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		userAgent: defaultUserAgent,
	}
}

// DiscoverURLs implements docsearch.SitemapService. baseURL is the site
// origin, e.g. "https://example.com".
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base := strings.TrimSuffix(baseURL, "/")

	locations := s.robotsSitemaps(ctx, base)
	if len(locations) == 0 {
		locations = []string{base + "/sitemap.xml"}
	}

	var urls []string
	for _, loc := range locations {
		found, err := s.collect(ctx, loc, 0, maxSitemapURLs-len(urls))
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
		if len(urls) >= maxSitemapURLs {
			break
		}
	}
	if len(urls) == 0 {
		return nil, docsearch.Errorf(docsearch.ENOTFOUND, "no sitemap URLs found for %s", baseURL)
	}
	return urls, nil
}

// robotsSitemaps returns the Sitemap directives from robots.txt, if any.
// Any failure reading robots.txt just means no directives.
func (s *SitemapService) robotsSitemaps(ctx context.Context, base string) []string {
	body, err := s.get(ctx, base+"/robots.txt")
	if err != nil {
		return nil
	}

	var locations []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < len("sitemap:") || !strings.EqualFold(line[:len("sitemap:")], "sitemap:") {
			continue
		}
		if loc := strings.TrimSpace(line[len("sitemap:"):]); loc != "" {
			locations = append(locations, loc)
		}
	}
	return locations
}

// collect fetches one sitemap document and returns the page URLs it yields,
// following nested index files up to maxSitemapDepth.
func (s *SitemapService) collect(ctx context.Context, loc string, depth, budget int) ([]string, error) {
	if depth > maxSitemapDepth || budget <= 0 {
		return nil, nil
	}

	body, err := s.get(ctx, loc)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "parse sitemap %s: %v", loc, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "empty sitemap %s", loc)
	}

	switch root.Tag {
	case "sitemapindex":
		var urls []string
		for _, sm := range root.SelectElements("sitemap") {
			child := locText(sm)
			if child == "" {
				continue
			}
			found, err := s.collect(ctx, child, depth+1, budget-len(urls))
			if err != nil {
				// A broken nested sitemap should not sink its siblings.
				continue
			}
			urls = append(urls, found...)
			if len(urls) >= budget {
				break
			}
		}
		return urls, nil
	case "urlset":
		var urls []string
		for _, u := range root.SelectElements("url") {
			if page := locText(u); page != "" {
				urls = append(urls, page)
			}
			if len(urls) >= budget {
				break
			}
		}
		return urls, nil
	default:
		return nil, docsearch.Errorf(docsearch.EINVALID, "sitemap %s: unexpected root element %q", loc, root.Tag)
	}
}

func locText(el *etree.Element) string {
	loc := el.SelectElement("loc")
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(loc.Text())
}

func (s *SitemapService) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", docsearch.Errorf(docsearch.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, url); err != nil {
		return "", err
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "read %s: %v", url, err)
	}
	return string(body), nil
}
