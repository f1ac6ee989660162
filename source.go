package docboost

import "context"

// Source provides documents to be indexed.
type Source interface {
	// Name identifies the source (e.g., "book", "api").
	Name() string

	// Documents returns every document the source provides.
	Documents(ctx context.Context) ([]*Document, error)
}
