// Package htmltomarkdown provides the artmark.Converter, built on
// html-to-markdown with a custom rule that recovers code-block language
// identifiers that source sites encode inconsistently.
package htmltomarkdown

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/artmark/artmark"
)

// langClassPattern matches the class tokens sites use to tag a code block's
// language: language-<id>, lang-<id>, or ext-<id>. Anchored so unrelated
// tokens that merely embed a hint prefix (context-menu, golang-tips) don't
// match; codeLanguage applies it per whitespace-separated token.
var langClassPattern = regexp.MustCompile(`(?i)^(?:language|lang|ext)-([a-zA-Z0-9#+._-]+)$`)

// langAliases normalizes common shorthand identifiers to their canonical
// fence annotations. Anything not listed passes through lowercase.
var langAliases = map[string]string{
	"cs":    "csharp",
	"c#":    "csharp",
	"js":    "javascript",
	"ts":    "typescript",
	"sh":    "bash",
	"shell": "bash",
	"py":    "python",
	"kt":    "kotlin",
}

// Ensure Converter implements artmark.Converter at compile time.
var _ artmark.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown using ATX
// headings, fenced code blocks, and *-delimited emphasis. Links and images
// pass through unmodified.
type Converter struct {
	conv *md.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := md.NewConverter("", true, &md.Options{
		HeadingStyle:    "atx",
		CodeBlockStyle:  "fenced",
		Fence:           "```",
		EmDelimiter:     "*",
		StrongDelimiter: "**",
	})

	conv.AddRules(md.Rule{
		Filter: []string{"pre"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			code := selec.Text()
			if strings.TrimSpace(code) == "" {
				// Whitespace-only blocks carry nothing worth keeping;
				// leave them to the default rules.
				return nil
			}

			code = strings.TrimRight(code, " \t\n")
			text := "\n\n```" + codeLanguage(selec) + "\n" + code + "\n```\n\n"
			return md.String(text)
		},
	})

	return &Converter{conv: conv}
}

// codeLanguage recovers the language identifier for a preformatted block.
// It searches, in order, the block's own class attribute, its inner code
// element's class attribute, and its immediate parent's class attribute,
// returning the first match normalized through the alias table. Returns ""
// when no location carries a recognizable hint.
func codeLanguage(selec *goquery.Selection) string {
	candidates := []string{
		selec.AttrOr("class", ""),
		selec.Find("code").First().AttrOr("class", ""),
		selec.Parent().AttrOr("class", ""),
	}

	for _, class := range candidates {
		for _, token := range strings.Fields(class) {
			m := langClassPattern.FindStringSubmatch(token)
			if m == nil {
				continue
			}
			id := strings.ToLower(m[1])
			if canonical, ok := langAliases[id]; ok {
				return canonical
			}
			return id
		}
	}

	return ""
}

// Convert transforms HTML content into Markdown. The result is trimmed and
// terminated with exactly one trailing newline.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", artmark.Errorf(artmark.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result) + "\n", nil
}
