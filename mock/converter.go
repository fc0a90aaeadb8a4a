package mock

import "github.com/artmark/artmark"

var _ artmark.Converter = (*Converter)(nil)

// Converter is a mock implementation of artmark.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
