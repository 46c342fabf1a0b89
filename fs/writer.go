// Package fs provides file-based storage for crawled documentation
// artifacts.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// maxSlugLen keeps artifact names well under filesystem limits.
const maxSlugLen = 100

// Sanitize reduces a string to a flat, traversal-safe path segment:
// lowercase ASCII letters, digits, hyphens and underscores only. Everything
// else collapses to a single hyphen.
func Sanitize(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// ArtifactName derives a flat Markdown filename from a page URL. The name
// carries a hash of the full URL so distinct pages with colliding slugs
// stay distinct.
func ArtifactName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", docsearch.Errorf(docsearch.EINVALID, "invalid source URL %q", rawURL)
	}

	slug := Sanitize(u.Host + " " + u.Path)
	if slug == "" {
		slug = "index"
	}
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return fmt.Sprintf("%s-%08x.md", slug, xxhash.Sum64String(rawURL)&0xffffffff), nil
}

// FormatDocument renders a document with YAML frontmatter.
func FormatDocument(doc *docsearch.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\ndoc_type: ")
	b.WriteString(doc.DocType)
	b.WriteString("\ncrawled: ")
	b.WriteString(doc.FetchedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

var _ docsearch.DocumentWriter = (*Writer)(nil)

// Writer stores documents as Markdown files under docsRoot/<docType>/.
// The document type becomes a single sanitized directory segment, so a
// hostile keyword cannot escape the docs root.
type Writer struct {
	docsRoot string
}

// NewWriter creates a writer rooted at docsRoot.
func NewWriter(docsRoot string) *Writer {
	return &Writer{docsRoot: docsRoot}
}

// CreateDocument implements docsearch.DocumentWriter. On success it sets
// doc.FilePath to the written artifact's absolute path.
func (w *Writer) CreateDocument(ctx context.Context, doc *docsearch.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	typeDir := Sanitize(doc.DocType)
	if typeDir == "" {
		return docsearch.Errorf(docsearch.EINVALID, "document type %q sanitizes to nothing", doc.DocType)
	}

	name, err := ArtifactName(doc.SourceURL)
	if err != nil {
		return err
	}

	dir := filepath.Join(w.docsRoot, typeDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "create artifact dir: %v", err)
	}

	fullPath := filepath.Join(dir, name)
	if err := os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0o644); err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "write artifact: %v", err)
	}
	doc.FilePath = fullPath
	return nil
}

// ArtifactDir returns the directory holding a document type's artifacts.
func (w *Writer) ArtifactDir(docType string) string {
	return filepath.Join(w.docsRoot, Sanitize(docType))
}
