package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docboost"
)

var _ docboost.SchemaInspector = (*LoggingSchemaInspector)(nil)

// LoggingSchemaInspector wraps a SchemaInspector with logging.
type LoggingSchemaInspector struct {
	next   docboost.SchemaInspector
	logger *slog.Logger
}

// NewLoggingSchemaInspector creates a new LoggingSchemaInspector.
func NewLoggingSchemaInspector(next docboost.SchemaInspector, logger *slog.Logger) *LoggingSchemaInspector {
	return &LoggingSchemaInspector{next: next, logger: logger}
}

// DescribeSchema delegates to the wrapped inspector and logs the operation.
func (s *LoggingSchemaInspector) DescribeSchema(ctx context.Context, connection, table string) (schema *docboost.DatabaseSchema, err error) {
	defer func(begin time.Time) {
		tables := 0
		if schema != nil {
			tables = len(schema.Tables)
		}
		s.logger.InfoContext(ctx, "describe schema",
			"connection", connection,
			"table", table,
			"tables", tables,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DescribeSchema(ctx, connection, table)
}
