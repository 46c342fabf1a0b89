package store

import (
	"context"
	"log/slog"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// Cleaner retires aged store generations: the remote store is deleted first,
// then its registry record. The newest record of each document type survives
// routine cleanup regardless of age.
type Cleaner struct {
	Registry docsearch.StoreRegistry
	Remote   docsearch.FileSearchService
	Logger   *slog.Logger

	now func() time.Time
}

// NewCleaner creates a cleaner.
func NewCleaner(registry docsearch.StoreRegistry, remote docsearch.FileSearchService, logger *slog.Logger) *Cleaner {
	return &Cleaner{
		Registry: registry,
		Remote:   remote,
		Logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Cleanup removes store records older than maxAge across all document
// types. With force set, even the newest record of a type is eligible.
// Failed deletions are reported per record and do not stop the pass.
func (c *Cleaner) Cleanup(ctx context.Context, maxAge time.Duration, force bool) (*docsearch.CleanupResult, error) {
	if maxAge <= 0 {
		maxAge = docsearch.DefaultMaxStoreAge
	}

	all, err := c.Registry.All(ctx)
	if err != nil {
		return nil, err
	}

	now := c.now()
	result := &docsearch.CleanupResult{}
	for docType, records := range all {
		for _, candidate := range docsearch.CleanupCandidates(records, now, maxAge, force) {
			if err := c.remove(ctx, candidate); err != nil {
				if ctx.Err() != nil {
					return nil, err
				}
				result.Failures = append(result.Failures, docsearch.CleanupFailure{
					StoreID: candidate.ID,
					DocType: docType,
					Err:     err.Error(),
				})
				c.Logger.Warn("store cleanup failed",
					slog.String("docType", docType),
					slog.String("storeId", candidate.ID),
					slog.String("error", err.Error()),
				)
				continue
			}
			result.Removed = append(result.Removed, candidate)
			c.Logger.Info("removed aged store",
				slog.String("docType", docType),
				slog.String("storeId", candidate.ID),
				slog.Time("createdAt", candidate.CreatedAt),
			)
		}
	}
	return result, nil
}

// remove deletes the remote store, then the record. A store already gone
// remotely still gets its record removed.
func (c *Cleaner) remove(ctx context.Context, s *docsearch.Store) error {
	if err := c.Remote.DeleteStore(ctx, s.ID); err != nil && docsearch.ErrorCode(err) != docsearch.ENOTFOUND {
		return err
	}
	return c.Registry.Remove(ctx, s.DocType, s.ID)
}
