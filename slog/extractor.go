package slog

import (
	"log/slog"
	"time"

	"github.com/artmark/artmark"
)

// Ensure Extractor implements artmark.Extractor at compile time.
var _ artmark.Extractor = (*Extractor)(nil)

// Extractor wraps an artmark.Extractor with logging. Extraction degrades
// silently to a full-body fallback by contract; the log line is the only
// place an operator can see whether the heuristic actually found an article.
type Extractor struct {
	next   artmark.Extractor
	logger *slog.Logger
}

// NewExtractor creates a new logging Extractor.
func NewExtractor(next artmark.Extractor, logger *slog.Logger) *Extractor {
	return &Extractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*artmark.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(rawHTML, pageURL)
	if err != nil {
		e.logger.Error("extraction failed",
			"url", pageURL,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	title := result.Title
	if title == "" {
		title = "(untitled)"
	}
	e.logger.Info("extracted",
		"url", pageURL,
		"title", title,
		"contentBytes", len(result.ContentHTML),
		"duration", time.Since(begin),
	)
	return result, nil
}
