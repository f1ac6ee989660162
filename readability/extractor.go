// Package readability implements docboost.Extractor with go-readability. It
// is the second extractor in the chain, used for pages trafilatura leaves
// empty.
package readability

import (
	"strings"

	"github.com/fwojciec/docboost"
	"github.com/go-shiori/go-readability"
)

var _ docboost.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title and content HTML.
func (e *Extractor) Extract(rawHTML string) (*docboost.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docboost.Errorf(docboost.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &docboost.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: strings.TrimSpace(article.Content),
	}, nil
}
