// Package store orchestrates the retrieval-store lifecycle: pushing crawled
// artifacts to the remote retrieval service, answering grounded queries, and
// retiring aged store generations.
package store

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// maxArtifactSize is the per-file size ceiling the remote service accepts.
const maxArtifactSize = 100 << 20

var allowedArtifactExts = map[string]bool{
	".md":   true,
	".txt":  true,
	".html": true,
}

// Uploader pushes artifact batches to the retrieval service and records the
// resulting store in the registry.
type Uploader struct {
	Registry docsearch.StoreRegistry
	Remote   docsearch.FileSearchService

	// Retry policy for transient remote failures.
	RetryAttempts  int
	RetryBaseDelay time.Duration

	Logger *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewUploader creates an uploader with the default retry policy.
func NewUploader(registry docsearch.StoreRegistry, remote docsearch.FileSearchService, logger *slog.Logger) *Uploader {
	return &Uploader{
		Registry:       registry,
		Remote:         remote,
		RetryAttempts:  docsearch.DefaultRetryAttempts,
		RetryBaseDelay: docsearch.DefaultRetryBaseDelay,
		Logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Upload creates a fresh remote store for docType and imports the given
// artifact files into it. Artifacts must be non-empty .md, .txt or .html
// files no larger than 100MB. Per-file import failures are reported as
// rejections; the store is only recorded when at least one file was
// accepted. Previous store generations are left untouched.
func (u *Uploader) Upload(ctx context.Context, docType string, paths []string) (*docsearch.UploadResult, error) {
	if docType == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "document type required")
	}
	if len(paths) == 0 {
		return nil, docsearch.Errorf(docsearch.EINVALID, "no artifact files to upload")
	}
	for _, path := range paths {
		if ext := strings.ToLower(filepath.Ext(path)); !allowedArtifactExts[ext] {
			return nil, docsearch.Errorf(docsearch.EINVALID, "artifact %s: unsupported file type %q (want .md, .txt or .html)", path, ext)
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, docsearch.Errorf(docsearch.EINVALID, "artifact %s: %v", path, err)
		}
		if info.Size() == 0 {
			return nil, docsearch.Errorf(docsearch.EINVALID, "artifact %s is empty", path)
		}
		if info.Size() > maxArtifactSize {
			return nil, docsearch.Errorf(docsearch.EINVALID, "artifact %s exceeds the %dMB size limit", path, maxArtifactSize>>20)
		}
	}

	created := u.now()
	displayName := docType + "-" + created.Format("20060102-150405")

	var storeID string
	err := docsearch.Retry(ctx, u.RetryAttempts, u.RetryBaseDelay, func(ctx context.Context) error {
		var cerr error
		storeID, cerr = u.Remote.CreateStore(ctx, displayName)
		return cerr
	})
	if err != nil {
		return nil, err
	}
	u.Logger.Info("created retrieval store",
		slog.String("docType", docType),
		slog.String("storeId", storeID),
	)

	result := &docsearch.UploadResult{}
	accepted := 0
	for _, path := range paths {
		err := docsearch.Retry(ctx, u.RetryAttempts, u.RetryBaseDelay, func(ctx context.Context) error {
			return u.Remote.UploadFile(ctx, storeID, path)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			result.Rejected = append(result.Rejected, docsearch.RejectedFile{Path: path, Err: err.Error()})
			u.Logger.Warn("artifact rejected",
				slog.String("path", path),
				slog.String("storeId", storeID),
				slog.String("error", err.Error()),
			)
			continue
		}
		accepted++
	}

	if accepted == 0 {
		// Nothing made it in; drop the empty remote store rather than
		// registering a record no query can use.
		if derr := u.Remote.DeleteStore(ctx, storeID); derr != nil {
			u.Logger.Warn("failed to delete empty store",
				slog.String("storeId", storeID),
				slog.String("error", derr.Error()),
			)
		}
		return nil, docsearch.Errorf(docsearch.EINTERNAL, "all %d artifacts rejected for document type %q", len(paths), docType)
	}

	result.Store = &docsearch.Store{
		ID:          storeID,
		DocType:     docType,
		CreatedAt:   created,
		Description: displayName,
		FileCount:   accepted,
	}
	if err := u.Registry.Add(ctx, result.Store); err != nil {
		return nil, err
	}
	u.Logger.Info("registered retrieval store",
		slog.String("docType", docType),
		slog.String("storeId", storeID),
		slog.Int("files", accepted),
		slog.Int("rejected", len(result.Rejected)),
	)
	return result, nil
}
