package store

import (
	"context"
	"log/slog"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// QueryService answers prompts grounded in the active store of a document
// type.
type QueryService struct {
	Registry  docsearch.StoreRegistry
	Generator docsearch.Generator
	Logger    *slog.Logger
}

// NewQueryService creates a query service.
func NewQueryService(registry docsearch.StoreRegistry, generator docsearch.Generator, logger *slog.Logger) *QueryService {
	return &QueryService{Registry: registry, Generator: generator, Logger: logger}
}

// Query resolves the document type's active store and generates an answer
// against it. An unknown document type fails with ENOTFOUND before any
// remote call. Generation is not retried; it is not idempotent and the
// caller decides whether to repeat it.
func (s *QueryService) Query(ctx context.Context, docType, prompt string) (string, error) {
	if prompt == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "prompt required")
	}

	active, err := s.Registry.Active(ctx, docType)
	if err != nil {
		return "", err
	}

	s.Logger.Debug("querying active store",
		slog.String("docType", docType),
		slog.String("storeId", active.ID),
	)
	return s.Generator.Generate(ctx, active.ID, prompt)
}
