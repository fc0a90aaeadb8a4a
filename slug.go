package artmark

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// maxSlugLen caps slugs to keep directory names filesystem-friendly.
const maxSlugLen = 80

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a lowercase, ASCII, hyphen-delimited identifier from a
// title. Returns "" when nothing survives normalization (empty title, pure
// punctuation, or non-Latin text with no ASCII fallback); callers should then
// use FallbackSlug. For any non-degenerate title the result is deterministic.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugSeparators.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
		slug = strings.Trim(slug, "-")
	}

	return slug
}

// FallbackSlug generates a timestamp-based slug for titles that normalize to
// nothing. The result matches the pattern "article-<milliseconds-since-epoch>".
func FallbackSlug(now time.Time) string {
	return fmt.Sprintf("article-%d", now.UnixMilli())
}
