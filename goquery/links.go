package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor pulls same-host anchor targets out of HTML for crawl
// expansion. Relative URLs are resolved against the page URL, fragments are
// dropped, and each URL appears at most once in document order.
type LinkExtractor struct{}

// NewLinkExtractor creates a link extractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks implements docsearch.LinkExtractor.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "invalid base URL %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "parse html: %v", err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		lower := strings.ToLower(href)
		if strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "tel:") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return
		}
		if !strings.EqualFold(abs.Host, base.Host) {
			return
		}
		abs.Fragment = ""

		link := abs.String()
		if !seen[link] {
			seen[link] = true
			links = append(links, link)
		}
	})
	return links, nil
}
