package mock

import (
	"context"

	"github.com/fwojciec/docboost"
)

var _ docboost.SchemaInspector = (*SchemaInspector)(nil)

// SchemaInspector is a mock implementation of docboost.SchemaInspector.
type SchemaInspector struct {
	DescribeSchemaFn func(ctx context.Context, connection, table string) (*docboost.DatabaseSchema, error)
}

func (s *SchemaInspector) DescribeSchema(ctx context.Context, connection, table string) (*docboost.DatabaseSchema, error) {
	return s.DescribeSchemaFn(ctx, connection, table)
}
