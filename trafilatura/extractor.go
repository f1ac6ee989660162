// Package trafilatura implements docboost.Extractor with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docboost"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ docboost.Extractor = (*Extractor)(nil)

// Extractor pulls the main content out of an API reference page. Comment
// sections are dropped; fallback extractors run when the primary pass finds
// too little text.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract returns the page title and the HTML of the main content node.
// ContentHTML is empty when trafilatura finds no content.
func (e *Extractor) Extract(rawHTML string) (*docboost.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docboost.Errorf(docboost.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	out := &docboost.ExtractResult{Title: strings.TrimSpace(result.Metadata.Title)}
	if result.ContentNode == nil {
		return out, nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}
	out.ContentHTML = buf.String()
	return out, nil
}
