package artmark

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// The result is trimmed and terminated with exactly one trailing
	// newline.
	Convert(html string) (string, error)
}
