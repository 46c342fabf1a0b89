package crawl

import (
	"net/url"
	"strings"
)

// Normalize canonicalizes a URL for visited-set membership: the scheme and
// host are lowercased, default ports and fragments are dropped, an empty
// path becomes "/", and a trailing slash is removed from non-root paths.
// Normalization is idempotent: Normalize(Normalize(u)) == Normalize(u).
func Normalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	switch {
	case u.Scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	if u.Path == "" {
		u.Path = "/"
	} else if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	return u.String()
}

// InScope reports whether a candidate URL belongs to the crawl scope
// defined by the root: same host and a path under the root's directory.
func InScope(root *url.URL, candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	if !strings.EqualFold(u.Host, root.Host) {
		return false
	}

	prefix := scopePrefix(root.Path)
	if prefix == "" {
		return true
	}
	return u.Path == strings.TrimSuffix(prefix, "/") || strings.HasPrefix(u.Path, prefix)
}

// scopePrefix derives the path prefix bounding a crawl from the root URL's
// path. The last segment is treated as a page, not a directory, unless the
// path ends with a slash.
func scopePrefix(rootPath string) string {
	if rootPath == "" || rootPath == "/" {
		return ""
	}
	if strings.HasSuffix(rootPath, "/") {
		return rootPath
	}
	if idx := strings.LastIndex(rootPath, "/"); idx >= 0 {
		return rootPath[:idx+1]
	}
	return ""
}
