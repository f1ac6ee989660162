package mock

import "github.com/fwojciec/docboost"

var _ docboost.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docboost.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docboost.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docboost.ExtractResult, error) {
	return e.ExtractFn(html)
}
