package mock

import (
	"context"

	"github.com/fwojciec/docboost"
)

var _ docboost.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docboost.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, q docboost.SearchQuery) ([]docboost.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, q docboost.SearchQuery) ([]docboost.SearchResult, error) {
	return s.SearchFn(ctx, q)
}
