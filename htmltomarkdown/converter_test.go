package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/artmark/artmark"
	"github.com/artmark/artmark/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements artmark.Converter at compile time.
var _ artmark.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()
	_, err := conv.Convert("   ")

	require.Error(t, err)
	assert.Equal(t, artmark.EINVALID, artmark.ErrorCode(err))
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings to ATX style", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("uses star-delimited emphasis", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>some <em>emphasized</em> and <strong>bold</strong> text</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "*emphasized*")
		assert.Contains(t, md, "**bold**")
	})

	t.Run("passes links through unmodified", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Visit <a href="https://example.com/page?a=1">Example</a> now.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com/page?a=1)")
	})

	t.Run("passes images through unmodified", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><img src="https://example.com/pic.png" alt="diagram"></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "![diagram](https://example.com/pic.png)")
	})

	t.Run("trims output and ends with exactly one newline", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>one</p><p>two</p>`)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(md, "\n"))
		assert.False(t, strings.HasSuffix(md, "\n\n"))
		assert.False(t, strings.HasPrefix(md, "\n"))
	})
}

func TestConverter_CodeBlockLanguageRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "language class on the pre element",
			html: `<pre class="language-csharp"><code>var x = 1;</code></pre>`,
			want: "```csharp\nvar x = 1;\n```",
		},
		{
			name: "language class on the inner code element",
			html: `<pre><code class="language-go">package main</code></pre>`,
			want: "```go\npackage main\n```",
		},
		{
			name: "language class on the wrapping container",
			html: `<div class="ext-kt"><pre><code>fun main() {}</code></pre></div>`,
			want: "```kotlin\nfun main() {}\n```",
		},
		{
			name: "ext token normalizes through the alias table",
			html: `<pre class="ext-py"><code>print(1)</code></pre>`,
			want: "```python\nprint(1)\n```",
		},
		{
			name: "lang token",
			html: `<pre><code class="lang-ts">let x: number;</code></pre>`,
			want: "```typescript\nlet x: number;\n```",
		},
		{
			name: "no class hints anywhere",
			html: `<pre><code>plain text block</code></pre>`,
			want: "```\nplain text block\n```",
		},
		{
			name: "hint token found among other class tokens",
			html: `<pre class="highlight language-go linenos"><code>x := 1</code></pre>`,
			want: "```go\nx := 1\n```",
		},
		{
			name: "unrelated token embedding a hint prefix is not a hint",
			html: `<div class="context-menu"><pre><code>x = 1</code></pre></div>`,
			want: "```\nx = 1\n```",
		},
		{
			name: "compound class containing lang substring is not a hint",
			html: `<pre class="golang-tips"><code>x := 2</code></pre>`,
			want: "```\nx := 2\n```",
		},
		{
			name: "unknown identifier passes through lowercase",
			html: `<pre class="language-Elixir"><code>IO.puts 1</code></pre>`,
			want: "```elixir\nIO.puts 1\n```",
		},
		{
			name: "pre element own class wins over inner code class",
			html: `<pre class="lang-sh"><code class="language-go">echo hi</code></pre>`,
			want: "```bash\necho hi\n```",
		},
		{
			name: "trailing blank lines inside the block are stripped",
			html: "<pre><code class=\"language-go\">fmt.Println(1)\n\n\n</code></pre>",
			want: "```go\nfmt.Println(1)\n```",
		},
		{
			name: "multi-line block keeps interior newlines",
			html: "<pre><code class=\"language-go\">package main\n\nfunc main() {}\n</code></pre>",
			want: "```go\npackage main\n\nfunc main() {}\n```",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := htmltomarkdown.NewConverter()
			md, err := conv.Convert(tt.html)

			require.NoError(t, err)
			assert.Contains(t, md, tt.want)
		})
	}
}

func TestConverter_AliasNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  string
	}{
		{token: "cs", want: "csharp"},
		{token: "c#", want: "csharp"},
		{token: "js", want: "javascript"},
		{token: "ts", want: "typescript"},
		{token: "sh", want: "bash"},
		{token: "shell", want: "bash"},
		{token: "py", want: "python"},
		{token: "kt", want: "kotlin"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			conv := htmltomarkdown.NewConverter()
			md, err := conv.Convert(`<pre class="language-` + tt.token + `"><code>x</code></pre>`)

			require.NoError(t, err)
			assert.Contains(t, md, "```"+tt.want+"\n")
		})
	}
}

func TestConverter_WhitespaceOnlyCodeBlockSkipsCustomRule(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()
	md, err := conv.Convert(`<p>before</p><pre><code>   </code></pre><p>after</p>`)

	require.NoError(t, err)
	// The custom rule must not emit a fence for an empty block; default
	// conversion may drop it entirely. Surrounding content survives.
	assert.Contains(t, md, "before")
	assert.Contains(t, md, "after")
}
