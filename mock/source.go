package mock

import (
	"context"

	"github.com/fwojciec/docboost"
)

var _ docboost.Source = (*Source)(nil)

// Source is a mock implementation of docboost.Source.
type Source struct {
	NameFn      func() string
	DocumentsFn func(ctx context.Context) ([]*docboost.Document, error)
}

func (s *Source) Name() string {
	return s.NameFn()
}

func (s *Source) Documents(ctx context.Context) ([]*docboost.Document, error) {
	return s.DocumentsFn(ctx)
}
