// Package readability provides the primary artmark.Extractor, built on the
// go-readability port of Mozilla's Readability heuristic.
package readability

import (
	"net/url"
	"strings"

	"github.com/artmark/artmark"
	artgoquery "github.com/artmark/artmark/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements artmark.Extractor at compile time.
var _ artmark.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Relative links
// and images are resolved against pageURL. When the heuristic finds no
// article region the raw document title and full page body are returned
// instead; degraded output is preferred over no output.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*artmark.ExtractResult, error) {
	if rawHTML == "" {
		return nil, artmark.Errorf(artmark.EINVALID, "empty HTML input")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil || strings.TrimSpace(article.Content) == "" {
		return artgoquery.FallbackExtract(rawHTML)
	}

	return &artmark.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
