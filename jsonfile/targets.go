package jsonfile

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.TargetResolver = (*TargetResolver)(nil)

// TargetResolver resolves crawl keywords from a JSON catalog of registered
// documentation sites. The catalog is read on every call, so edits take
// effect without restarting.
type TargetResolver struct {
	path string
}

// NewTargetResolver creates a resolver reading the catalog at path.
func NewTargetResolver(path string) *TargetResolver {
	return &TargetResolver{path: path}
}

type targetsFile struct {
	Targets map[string]struct {
		URL         string `json:"url"`
		Description string `json:"description,omitempty"`
	} `json:"targets"`
}

// Resolve implements docsearch.TargetResolver. Lookup tries an exact
// keyword match, then case-insensitive, then a substring match that must be
// unique. Literal http(s) URLs bypass the catalog; their document type is
// the catalog keyword registered for that URL, or one derived from the host.
func (r *TargetResolver) Resolve(keywordOrURL string) (*docsearch.Target, error) {
	in := strings.TrimSpace(keywordOrURL)
	if in == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "keyword or URL required")
	}

	targets, err := r.loadTargets()
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(in, "http://") || strings.HasPrefix(in, "https://") {
		return resolveURL(in, targets), nil
	}

	if t, ok := targets[in]; ok {
		return t, nil
	}

	var matches []*docsearch.Target
	for keyword, t := range targets {
		if strings.EqualFold(keyword, in) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return nil, ambiguous(in, matches)
	}

	for keyword, t := range targets {
		if strings.Contains(strings.ToLower(keyword), strings.ToLower(in)) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		if len(targets) == 0 {
			return nil, docsearch.Errorf(docsearch.ENOTFOUND, "no crawl targets registered")
		}
		return nil, docsearch.Errorf(docsearch.ENOTFOUND, "no crawl target matches %q (registered targets: %s)", in, keywordList(targets))
	case 1:
		return matches[0], nil
	default:
		return nil, ambiguous(in, matches)
	}
}

// List implements docsearch.TargetResolver.
func (r *TargetResolver) List() ([]*docsearch.Target, error) {
	targets, err := r.loadTargets()
	if err != nil {
		return nil, err
	}

	out := make([]*docsearch.Target, 0, len(targets))
	for _, t := range targets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Keyword < out[j].Keyword })
	return out, nil
}

func (r *TargetResolver) loadTargets() (map[string]*docsearch.Target, error) {
	out := make(map[string]*docsearch.Target)

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINTERNAL, "read target catalog: %v", err)
	}

	var f targetsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, docsearch.Errorf(docsearch.EINTERNAL, "parse target catalog %s: %v", r.path, err)
	}
	for keyword, t := range f.Targets {
		out[keyword] = &docsearch.Target{
			Keyword:     keyword,
			URL:         t.URL,
			Description: t.Description,
		}
	}
	return out, nil
}

// resolveURL maps a literal URL to a target. A catalog entry with the same
// URL lends its keyword; otherwise the keyword derives from the host.
func resolveURL(rawURL string, targets map[string]*docsearch.Target) *docsearch.Target {
	for _, t := range targets {
		if t.URL == rawURL {
			return t
		}
	}
	return &docsearch.Target{
		Keyword: docTypeFromURL(rawURL),
		URL:     rawURL,
	}
}

// docTypeFromURL turns a URL host into a document type, e.g.
// "https://developers.google.com/x" becomes "developers_google_com".
func docTypeFromURL(rawURL string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
	if i := strings.IndexAny(host, "/:?#"); i >= 0 {
		host = host[:i]
	}
	host = strings.ToLower(host)
	host = strings.ReplaceAll(host, ".", "_")
	host = strings.ReplaceAll(host, "-", "_")
	if host == "" {
		return "unknown"
	}
	return host
}

func keywordList(targets map[string]*docsearch.Target) string {
	keywords := make([]string, 0, len(targets))
	for keyword := range targets {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return strings.Join(keywords, ", ")
}

func ambiguous(in string, matches []*docsearch.Target) error {
	keywords := make([]string, len(matches))
	for i, t := range matches {
		keywords[i] = t.Keyword
	}
	sort.Strings(keywords)
	return docsearch.Errorf(docsearch.ECONFLICT, "keyword %q is ambiguous: matches %s", in, strings.Join(keywords, ", "))
}
