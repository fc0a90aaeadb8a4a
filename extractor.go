package artmark

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	// May be empty when the page carries no usable title.
	Title string

	// ContentHTML is the main article content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// pageURL is the page's own URL, used to resolve relative links and
	// images. Extraction never hard-fails on heuristic misses: when no
	// article region is found, implementations fall back to the raw
	// document title and the full page body.
	Extract(rawHTML string, pageURL string) (*ExtractResult, error)
}
