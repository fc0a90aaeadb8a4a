// Package trafilatura provides an alternative artmark.Extractor built on
// go-trafilatura. It tends to do better on news sites with heavy chrome;
// selectable from the CLI via --extractor=trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/artmark/artmark"
	artgoquery "github.com/artmark/artmark/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements artmark.Extractor at compile time.
var _ artmark.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content, falling back to
// the raw title and full page body when the heuristic yields nothing.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*artmark.ExtractResult, error) {
	if rawHTML == "" {
		return nil, artmark.Errorf(artmark.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if base, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = base
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result.ContentNode == nil {
		return artgoquery.FallbackExtract(rawHTML)
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil || strings.TrimSpace(contentHTML) == "" {
		return artgoquery.FallbackExtract(rawHTML)
	}

	return &artmark.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
