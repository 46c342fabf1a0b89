// Package goquery implements HTML inspection services using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// DefaultTextThreshold is the visible-text length below which a page with
// framework markers is treated as a JavaScript shell.
const DefaultTextThreshold = 500

// frameworkSelectors maps framework names to CSS selectors whose presence
// marks a client-rendered application shell.
var frameworkSelectors = map[string][]string{
	"react":   {"div#root", "[data-reactroot]", "[data-reactid]"},
	"vue":     {"div#app[data-server-rendered]", "[data-v-app]"},
	"angular": {"[ng-version]", "app-root"},
	"next.js": {"script#__NEXT_DATA__", "div#__next"},
}

// frameworkMarkers maps framework names to raw substrings searched in the
// markup, for frameworks that leave no stable DOM selector.
var frameworkMarkers = map[string][]string{
	"vue":     {"window.__VUE__", "__vite__"},
	"nuxt":    {"window.__NUXT__", "id=\"__nuxt\""},
	"next.js": {"/_next/static/"},
}

var _ docsearch.Classifier = (*Classifier)(nil)

// Classifier detects JavaScript application shells: pages that carry a
// front-end framework marker but almost no visible text. Both conditions
// must hold; a server-rendered React site with real content stays static.
type Classifier struct {
	// TextThreshold overrides DefaultTextThreshold when positive.
	TextThreshold int
}

// NewClassifier creates a classifier with the default text threshold.
func NewClassifier() *Classifier {
	return &Classifier{TextThreshold: DefaultTextThreshold}
}

// Classify implements docsearch.Classifier. Unparseable HTML classifies as
// static so the pipeline proceeds with whatever was fetched.
func (c *Classifier) Classify(html string) docsearch.Classification {
	threshold := c.TextThreshold
	if threshold <= 0 {
		threshold = DefaultTextThreshold
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docsearch.Classification{TextLen: len(strings.TrimSpace(html))}
	}

	frameworks := detectFrameworks(doc, html)
	textLen := visibleTextLen(doc)

	return docsearch.Classification{
		Dynamic:    len(frameworks) > 0 && textLen < threshold,
		Frameworks: frameworks,
		TextLen:    textLen,
	}
}

func detectFrameworks(doc *goquery.Document, html string) []string {
	found := make(map[string]bool)
	for name, selectors := range frameworkSelectors {
		for _, sel := range selectors {
			if doc.Find(sel).Length() > 0 {
				found[name] = true
				break
			}
		}
	}
	for name, markers := range frameworkMarkers {
		if found[name] {
			continue
		}
		for _, marker := range markers {
			if strings.Contains(html, marker) {
				found[name] = true
				break
			}
		}
	}
	if len(found) == 0 {
		return nil
	}

	// Stable order for logging.
	order := []string{"react", "vue", "angular", "next.js", "nuxt"}
	var out []string
	for _, name := range order {
		if found[name] {
			out = append(out, name)
		}
	}
	return out
}

// visibleTextLen measures the body text with script, style and noscript
// content removed and whitespace runs collapsed.
func visibleTextLen(doc *goquery.Document) int {
	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	clone := sel.Clone()
	clone.Find("script, style, noscript, template").Remove()
	return len(strings.Join(strings.Fields(clone.Text()), " "))
}
