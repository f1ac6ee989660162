package mock

import (
	"context"

	"github.com/fwojciec/docboost"
)

var _ docboost.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of docboost.DocumentStore.
type DocumentStore struct {
	UpsertFn func(ctx context.Context, doc *docboost.Document) error
	ClearFn  func(ctx context.Context) error
	StatsFn  func(ctx context.Context) (*docboost.Stats, error)
}

func (s *DocumentStore) Upsert(ctx context.Context, doc *docboost.Document) error {
	return s.UpsertFn(ctx, doc)
}

func (s *DocumentStore) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}

func (s *DocumentStore) Stats(ctx context.Context) (*docboost.Stats, error) {
	return s.StatsFn(ctx)
}
