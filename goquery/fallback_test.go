package goquery_test

import (
	"testing"

	artgoquery "github.com/artmark/artmark/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackExtract(t *testing.T) {
	t.Parallel()

	t.Run("returns document title and body", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Raw Title</title></head>
<body><p>Body text that survives the degraded path.</p></body>
</html>`

		result, err := artgoquery.FallbackExtract(html)

		require.NoError(t, err)
		assert.Equal(t, "Raw Title", result.Title)
		assert.Contains(t, result.ContentHTML, "Body text that survives")
	})

	t.Run("missing title yields empty title", func(t *testing.T) {
		t.Parallel()

		result, err := artgoquery.FallbackExtract(`<html><body><p>text</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, result.Title)
		assert.Contains(t, result.ContentHTML, "text")
	})

	t.Run("bare fragment falls back to the input", func(t *testing.T) {
		t.Parallel()

		result, err := artgoquery.FallbackExtract(`<p>fragment only</p>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "fragment only")
	})
}
