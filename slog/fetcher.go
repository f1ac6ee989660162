package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docboost"
)

var _ docboost.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   docboost.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docboost.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher. Successful fetches are logged at
// info level, missing pages at warn and any other failure at error.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Log(ctx, fetchLevel(err), "fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

func fetchLevel(err error) slog.Level {
	switch {
	case err == nil:
		return slog.LevelInfo
	case docboost.ErrorCode(err) == docboost.ENOTFOUND:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
