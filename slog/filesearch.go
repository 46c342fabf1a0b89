package slog

import (
	"context"
	"log/slog"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// Ensure LoggingFileSearchService implements docsearch.FileSearchService.
var _ docsearch.FileSearchService = (*LoggingFileSearchService)(nil)

// LoggingFileSearchService wraps a FileSearchService with operation logging.
type LoggingFileSearchService struct {
	next   docsearch.FileSearchService
	logger *slog.Logger
}

// NewLoggingFileSearchService creates a new LoggingFileSearchService.
func NewLoggingFileSearchService(next docsearch.FileSearchService, logger *slog.Logger) *LoggingFileSearchService {
	return &LoggingFileSearchService{next: next, logger: logger}
}

// CreateStore delegates to the wrapped service and logs the operation.
func (s *LoggingFileSearchService) CreateStore(ctx context.Context, displayName string) (storeID string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("create retrieval store",
			"displayName", displayName,
			"storeId", storeID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateStore(ctx, displayName)
}

// UploadFile delegates to the wrapped service and logs the operation.
func (s *LoggingFileSearchService) UploadFile(ctx context.Context, storeID, path string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("upload artifact",
			"storeId", storeID,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UploadFile(ctx, storeID, path)
}

// DeleteStore delegates to the wrapped service and logs the operation.
func (s *LoggingFileSearchService) DeleteStore(ctx context.Context, storeID string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete retrieval store",
			"storeId", storeID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteStore(ctx, storeID)
}

// Ensure LoggingSitemapService implements docsearch.SitemapService.
var _ docsearch.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with discovery logging.
type LoggingSitemapService struct {
	next   docsearch.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next docsearch.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL)
}
