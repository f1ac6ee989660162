// Package htmltomarkdown implements docboost.Converter with html-to-markdown.
// The Markdown it produces becomes the indexed body of crawled documents.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docboost"
)

var _ docboost.Converter = (*Converter)(nil)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Converter converts extracted HTML to CommonMark with GFM tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert returns the Markdown for html with runs of blank lines collapsed.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docboost.Errorf(docboost.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", docboost.Errorf(docboost.EINVALID, "converting HTML: %v", err)
	}

	return strings.TrimSpace(blankRunRe.ReplaceAllString(md, "\n\n")), nil
}
