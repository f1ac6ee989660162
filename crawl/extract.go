package crawl

import (
	"errors"
	"strings"

	"github.com/fwojciec/docboost"
)

// Compile-time interface verification.
var _ docboost.Extractor = (ExtractorChain)(nil)

// ExtractorChain tries each extractor in order and returns the first
// result with non-empty content.
type ExtractorChain []docboost.Extractor

// Extract implements docboost.Extractor.
func (c ExtractorChain) Extract(html string) (*docboost.ExtractResult, error) {
	var errs []error
	var title string
	for _, e := range c {
		result, err := e.Extract(html)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if title == "" {
			title = result.Title
		}
		if strings.TrimSpace(result.ContentHTML) != "" {
			if result.Title == "" {
				result.Title = title
			}
			return result, nil
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &docboost.ExtractResult{Title: title}, nil
}
