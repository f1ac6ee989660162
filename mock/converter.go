package mock

import "github.com/fwojciec/docboost"

var _ docboost.Converter = (*Converter)(nil)

// Converter is a mock implementation of docboost.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
