// Package capture provides the article capture pipeline.
// It coordinates fetching, content extraction, Markdown conversion, slug
// derivation, prompt generation, and storage for a single URL.
package capture

import (
	"context"
	"time"

	"github.com/artmark/artmark"
)

// DefaultLang is the target language used when none is requested.
const DefaultLang = "zh"

// Pipeline orchestrates one capture run. Stages execute strictly in
// sequence; any stage error aborts the run before anything is written.
type Pipeline struct {
	Fetcher   artmark.Fetcher
	Extractor artmark.Extractor
	Converter artmark.Converter
	Store     artmark.DocumentStore
	Prompts   *artmark.PromptBuilder

	// Now supplies timestamps for metadata and the degenerate-title slug
	// fallback. Defaults to time.Now.
	Now func() time.Time
}

// Result summarizes a completed capture run.
type Result struct {
	Slug       string
	Title      string
	Dir        string
	Lang       string
	PromptPath string
}

// Run captures the article at url and persists its artifacts for the given
// target language.
func (p *Pipeline) Run(ctx context.Context, url, lang string) (*Result, error) {
	if url == "" {
		return nil, artmark.Errorf(artmark.EINVALID, "URL required")
	}
	if lang == "" {
		lang = DefaultLang
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	rawHTML, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	extracted, err := p.Extractor.Extract(rawHTML, url)
	if err != nil {
		return nil, err
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	slug := artmark.Slugify(extracted.Title)
	if slug == "" {
		slug = artmark.FallbackSlug(now())
	}

	prompt := p.Prompts.Build(markdown, lang)

	doc := &artmark.Document{
		Slug:       slug,
		Title:      extracted.Title,
		SourceURL:  url,
		TargetLang: lang,
		Markdown:   markdown,
		CreatedAt:  now(),
	}

	saved, err := p.Store.Save(ctx, doc, prompt)
	if err != nil {
		return nil, err
	}

	return &Result{
		Slug:       slug,
		Title:      extracted.Title,
		Dir:        saved.Dir,
		Lang:       lang,
		PromptPath: saved.PromptPath,
	}, nil
}
