package mock

import "github.com/artmark/artmark"

var _ artmark.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of artmark.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string, pageURL string) (*artmark.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string, pageURL string) (*artmark.ExtractResult, error) {
	return e.ExtractFn(rawHTML, pageURL)
}
