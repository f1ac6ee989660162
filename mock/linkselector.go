package mock

import "github.com/fwojciec/docboost"

var _ docboost.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of docboost.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]docboost.DiscoveredLink, error)
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]docboost.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}
