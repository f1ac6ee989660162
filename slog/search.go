package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docboost"
)

var _ docboost.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
type LoggingSearchService struct {
	next   docboost.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next docboost.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the query.
func (s *LoggingSearchService) Search(ctx context.Context, q docboost.SearchQuery) (results []docboost.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "search",
			"query", q.Query,
			"limit", q.Limit,
			"types", q.Types,
			"categories", q.Categories,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, q)
}
