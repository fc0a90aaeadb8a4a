// Package goquery provides DOM helpers shared by the content extractors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/artmark/artmark"
)

// FallbackExtract returns the raw document title and the full page body.
// It backs the extractors' degraded path: when the readability heuristic
// finds no article region, a full-body capture is still better than nothing.
func FallbackExtract(rawHTML string) (*artmark.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, artmark.Errorf(artmark.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	body, err := doc.Find("body").First().Html()
	if err != nil || strings.TrimSpace(body) == "" {
		// No body element; fall back to the document as given.
		body = rawHTML
	}

	return &artmark.ExtractResult{
		Title:       title,
		ContentHTML: body,
	}, nil
}
