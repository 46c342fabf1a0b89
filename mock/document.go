package mock

import (
	"context"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of docsearch.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *docsearch.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *docsearch.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}

var _ docsearch.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docsearch.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}

var _ docsearch.RunService = (*RunService)(nil)

// RunService is a mock implementation of docsearch.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *docsearch.Run) error
	FindRunsFn  func(ctx context.Context, filter docsearch.RunFilter) ([]*docsearch.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *docsearch.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter docsearch.RunFilter) ([]*docsearch.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

var _ docsearch.TargetResolver = (*TargetResolver)(nil)

// TargetResolver is a mock implementation of docsearch.TargetResolver.
type TargetResolver struct {
	ResolveFn func(keywordOrURL string) (*docsearch.Target, error)
	ListFn    func() ([]*docsearch.Target, error)
}

func (r *TargetResolver) Resolve(keywordOrURL string) (*docsearch.Target, error) {
	return r.ResolveFn(keywordOrURL)
}

func (r *TargetResolver) List() ([]*docsearch.Target, error) {
	return r.ListFn()
}
