package artmark

import (
	"context"
	"time"
)

// Article is the in-memory result of one capture run. It is not persisted
// directly; the pipeline decomposes it into the per-slug artifacts.
type Article struct {
	// Title as recovered by the extractor. Possibly empty.
	Title string

	// Markdown is the normalized article body, trailing-newline-terminated.
	Markdown string

	// SourceURL is the URL the article was captured from.
	SourceURL string
}

// Document is the persisted form of a captured article, keyed by Slug.
type Document struct {
	Slug       string
	Title      string
	SourceURL  string
	TargetLang string
	Markdown   string
	CreatedAt  time.Time
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Slug == "" {
		return Errorf(EINVALID, "document slug required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Markdown == "" {
		return Errorf(EINVALID, "document markdown body required")
	}
	if d.TargetLang == "" {
		return Errorf(EINVALID, "document target language required")
	}
	return nil
}

// SaveResult reports where a document's artifacts were written.
type SaveResult struct {
	// Dir is the per-slug directory holding all artifacts.
	Dir string

	// SourcePath is the frontmatter-wrapped Markdown file.
	SourcePath string

	// MetaPath is the JSON metadata record.
	MetaPath string

	// PromptPath is the translation prompt for the document's target
	// language.
	PromptPath string
}

// DocumentStore persists captured documents as plain files.
//
// A run writes all three artifacts (source document, metadata record,
// translation prompt) together; implementations must not leave a visible
// partial set behind on failure. Saving a slug that already exists replaces
// its source and metadata wholesale; prompts generated earlier for other
// target languages of the same slug are left in place.
type DocumentStore interface {
	Save(ctx context.Context, doc *Document, prompt string) (*SaveResult, error)
}
