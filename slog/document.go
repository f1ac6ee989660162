package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docboost"
)

var _ docboost.DocumentStore = (*LoggingDocumentStore)(nil)

// LoggingDocumentStore wraps a DocumentStore with logging. Upserts are
// logged at debug level since an index run performs one per document.
type LoggingDocumentStore struct {
	next   docboost.DocumentStore
	logger *slog.Logger
}

// NewLoggingDocumentStore creates a new LoggingDocumentStore.
func NewLoggingDocumentStore(next docboost.DocumentStore, logger *slog.Logger) *LoggingDocumentStore {
	return &LoggingDocumentStore{next: next, logger: logger}
}

// Upsert delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) Upsert(ctx context.Context, doc *docboost.Document) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "upsert document",
			"url", doc.URL,
			"type", doc.Type,
			"id", doc.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Upsert(ctx, doc)
}

// Clear delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) Clear(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "clear documents",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Clear(ctx)
}

// Stats delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) Stats(ctx context.Context) (stats *docboost.Stats, err error) {
	defer func(begin time.Time) {
		total := 0
		if stats != nil {
			total = stats.Total
		}
		s.logger.DebugContext(ctx, "document stats",
			"total", total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Stats(ctx)
}
