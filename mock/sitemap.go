package mock

import (
	"context"

	"github.com/fwojciec/docboost"
)

var _ docboost.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docboost.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *docboost.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *docboost.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
