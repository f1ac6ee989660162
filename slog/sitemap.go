// Package slog decorates docboost services with structured logging. Each
// wrapper logs one record per call with its arguments, result size, duration
// and error.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docboost"
)

var _ docboost.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   docboost.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next docboost.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *docboost.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
