// Package gemini implements the retrieval-store and generation boundaries
// on the Gemini API using google.golang.org/genai.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// uploadPollInterval paces polling of remote import operations. Imports
// typically finish within a few seconds per file.
const uploadPollInterval = 2 * time.Second

var _ docsearch.FileSearchService = (*FileSearch)(nil)

// FileSearch manages File Search stores on the Gemini API. Store ids are the
// API's resource names, e.g. "fileSearchStores/abc123".
type FileSearch struct {
	client *genai.Client
}

// NewFileSearch creates a FileSearch service.
func NewFileSearch(client *genai.Client) *FileSearch {
	return &FileSearch{client: client}
}

// CreateStore implements docsearch.FileSearchService.
func (s *FileSearch) CreateStore(ctx context.Context, displayName string) (string, error) {
	if displayName == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "store display name required")
	}

	store, err := s.client.FileSearchStores.Create(ctx, &genai.CreateFileSearchStoreConfig{
		DisplayName: displayName,
	})
	if err != nil {
		return "", classify(err, "create store %q", displayName)
	}
	if store.Name == "" {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "create store %q: empty resource name", displayName)
	}
	return store.Name, nil
}

// UploadFile implements docsearch.FileSearchService. It blocks until the
// remote import operation finishes.
func (s *FileSearch) UploadFile(ctx context.Context, storeID, path string) error {
	op, err := s.client.FileSearchStores.UploadToFileSearchStoreFromPath(ctx, path, storeID, nil)
	if err != nil {
		return classify(err, "upload %s to %s", path, storeID)
	}

	for !op.Done {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(uploadPollInterval):
		}
		op, err = s.client.Operations.GetUploadToFileSearchStoreOperation(ctx, op, nil)
		if err != nil {
			return classify(err, "poll import of %s", path)
		}
	}
	if op.Error != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "import %s into %s: %v", path, storeID, op.Error["message"])
	}
	return nil
}

// DeleteStore implements docsearch.FileSearchService. Deletion is forced so
// non-empty stores are removed together with their documents.
func (s *FileSearch) DeleteStore(ctx context.Context, storeID string) error {
	if storeID == "" {
		return docsearch.Errorf(docsearch.EINVALID, "store id required")
	}

	err := s.client.FileSearchStores.Delete(ctx, storeID, &genai.DeleteFileSearchStoreConfig{
		Force: genai.Ptr(true),
	})
	if err != nil {
		return classify(err, "delete store %s", storeID)
	}
	return nil
}

// classify maps a genai error to a coded error. Rate limits and server-side
// failures are transient; auth and bad-request failures are not. Errors the
// SDK does not attribute to the API are treated as network problems.
func classify(err error, format string, args ...any) error {
	prefix := fmt.Sprintf(format, args...)

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return docsearch.Errorf(docsearch.EUNAVAILABLE, "%s: %v", prefix, err)
	}

	switch {
	case apiErr.Code == 401 || apiErr.Code == 403:
		return docsearch.Errorf(docsearch.EUNAUTHORIZED, "%s: %s", prefix, apiErr.Message)
	case apiErr.Code == 404:
		return docsearch.Errorf(docsearch.ENOTFOUND, "%s: %s", prefix, apiErr.Message)
	case apiErr.Code == 429 || apiErr.Code >= 500:
		return docsearch.Errorf(docsearch.EUNAVAILABLE, "%s: %s", prefix, apiErr.Message)
	case apiErr.Code == 400:
		return docsearch.Errorf(docsearch.EINVALID, "%s: %s", prefix, apiErr.Message)
	default:
		return docsearch.Errorf(docsearch.EINTERNAL, "%s: %s", prefix, apiErr.Message)
	}
}
