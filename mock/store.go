package mock

import (
	"context"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.StoreRegistry = (*StoreRegistry)(nil)

// StoreRegistry is a mock implementation of docsearch.StoreRegistry.
type StoreRegistry struct {
	ActiveFn func(ctx context.Context, docType string) (*docsearch.Store, error)
	AddFn    func(ctx context.Context, store *docsearch.Store) error
	ByTypeFn func(ctx context.Context, docType string) ([]*docsearch.Store, error)
	AllFn    func(ctx context.Context) (map[string][]*docsearch.Store, error)
	RemoveFn func(ctx context.Context, docType, storeID string) error
}

func (r *StoreRegistry) Active(ctx context.Context, docType string) (*docsearch.Store, error) {
	return r.ActiveFn(ctx, docType)
}

func (r *StoreRegistry) Add(ctx context.Context, store *docsearch.Store) error {
	return r.AddFn(ctx, store)
}

func (r *StoreRegistry) ByType(ctx context.Context, docType string) ([]*docsearch.Store, error) {
	return r.ByTypeFn(ctx, docType)
}

func (r *StoreRegistry) All(ctx context.Context) (map[string][]*docsearch.Store, error) {
	return r.AllFn(ctx)
}

func (r *StoreRegistry) Remove(ctx context.Context, docType, storeID string) error {
	return r.RemoveFn(ctx, docType, storeID)
}

var _ docsearch.FileSearchService = (*FileSearchService)(nil)

// FileSearchService is a mock implementation of docsearch.FileSearchService.
type FileSearchService struct {
	CreateStoreFn func(ctx context.Context, displayName string) (string, error)
	UploadFileFn  func(ctx context.Context, storeID, path string) error
	DeleteStoreFn func(ctx context.Context, storeID string) error
}

func (s *FileSearchService) CreateStore(ctx context.Context, displayName string) (string, error) {
	return s.CreateStoreFn(ctx, displayName)
}

func (s *FileSearchService) UploadFile(ctx context.Context, storeID, path string) error {
	return s.UploadFileFn(ctx, storeID, path)
}

func (s *FileSearchService) DeleteStore(ctx context.Context, storeID string) error {
	return s.DeleteStoreFn(ctx, storeID)
}

var _ docsearch.Generator = (*Generator)(nil)

// Generator is a mock implementation of docsearch.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, storeID, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, storeID, prompt string) (string, error) {
	return g.GenerateFn(ctx, storeID, prompt)
}
