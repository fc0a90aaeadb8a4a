// Package fs provides file-based storage for captured documents.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/artmark/artmark"
	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// frontmatter is the YAML header prepended to source.md. The lang tag is
// always "source": the file holds the untranslated capture.
type frontmatter struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	SourceURL string `yaml:"sourceUrl"`
	Lang      string `yaml:"lang"`
}

// Meta is the flat metadata record persisted as meta.json, one per slug
// directory.
type Meta struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	SourceURL   string `json:"sourceUrl"`
	TargetLang  string `json:"targetLang"`
	ContentHash string `json:"contentHash"`
	CreatedAt   string `json:"createdAt"`
}

// FormatSource formats a document as frontmatter followed by the Markdown
// body.
func FormatSource(doc *artmark.Document) (string, error) {
	fm := frontmatter{
		Title:     doc.Title,
		Date:      doc.CreatedAt.UTC().Format("2006-01-02"),
		SourceURL: doc.SourceURL,
		Lang:      "source",
	}

	data, err := yaml.Marshal(&fm)
	if err != nil {
		return "", err
	}

	return "---\n" + string(data) + "---\n\n" + doc.Markdown, nil
}

// FormatMeta formats a document's metadata record as indented JSON.
// The content hash is an xxhash of the Markdown body, giving wrapping
// tooling a cheap way to detect content changes between runs.
func FormatMeta(doc *artmark.Document) ([]byte, error) {
	// Date and CreatedAt are both derived in UTC so the two fields always
	// name the same calendar day.
	meta := Meta{
		Slug:        doc.Slug,
		Title:       doc.Title,
		Date:        doc.CreatedAt.UTC().Format("2006-01-02"),
		SourceURL:   doc.SourceURL,
		TargetLang:  doc.TargetLang,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(doc.Markdown)),
		CreatedAt:   doc.CreatedAt.UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(&meta, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

// PromptFilename returns the prompt artifact name for a target language.
func PromptFilename(lang string) string {
	return "translate." + lang + ".prompt.txt"
}

// Ensure Writer implements artmark.DocumentStore at compile time.
var _ artmark.DocumentStore = (*Writer)(nil)

// Writer persists documents under a content root, one directory per slug.
// The three artifacts of a run are staged in a temporary directory and then
// renamed into place, so a failed run leaves no visible partial set. Renames
// happen per file rather than per directory: prompts generated earlier for
// other target languages of the same slug stay alive.
type Writer struct {
	root string
}

// NewWriter creates a Writer rooted at the given content directory
// (e.g., content/articles).
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Dir returns the directory a slug's artifacts live in.
func (w *Writer) Dir(slug string) string {
	return filepath.Join(w.root, slug)
}

func (w *Writer) stagingDir(slug string) string {
	return filepath.Join(w.root, ".tmp-"+slug)
}

// Save writes source.md, meta.json, and the translation prompt for doc.
// Saving an existing slug replaces its source and metadata wholesale.
func (w *Writer) Save(ctx context.Context, doc *artmark.Document, prompt string) (*artmark.SaveResult, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	source, err := FormatSource(doc)
	if err != nil {
		return nil, err
	}
	meta, err := FormatMeta(doc)
	if err != nil {
		return nil, err
	}

	staging := w.stagingDir(doc.Slug)
	if err := os.MkdirAll(staging, 0755); err != nil {
		return nil, err
	}
	defer os.RemoveAll(staging)

	// Stage in the order source document, metadata record, prompt.
	artifacts := []struct {
		name string
		data []byte
	}{
		{"source.md", []byte(source)},
		{"meta.json", meta},
		{PromptFilename(doc.TargetLang), []byte(prompt)},
	}

	for _, a := range artifacts {
		if err := os.WriteFile(filepath.Join(staging, a.name), a.data, 0644); err != nil {
			return nil, err
		}
	}

	dir := w.Dir(doc.Slug)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	for _, a := range artifacts {
		if err := os.Rename(filepath.Join(staging, a.name), filepath.Join(dir, a.name)); err != nil {
			return nil, err
		}
	}

	return &artmark.SaveResult{
		Dir:        dir,
		SourcePath: filepath.Join(dir, "source.md"),
		MetaPath:   filepath.Join(dir, "meta.json"),
		PromptPath: filepath.Join(dir, PromptFilename(doc.TargetLang)),
	}, nil
}
