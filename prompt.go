package artmark

import (
	"fmt"
	"strings"
)

// LanguageNames maps target language codes to display names used inside
// translation prompts. Codes without an entry pass through literally.
type LanguageNames map[string]string

// DefaultLanguageNames returns the built-in code→display-name mapping.
// Additional target languages are a data change: add an entry here or pass a
// custom map to the PromptBuilder.
func DefaultLanguageNames() LanguageNames {
	return LanguageNames{
		"zh": "简体中文",
	}
}

// DisplayName resolves a language code to its display name, falling back to
// the code itself.
func (n LanguageNames) DisplayName(code string) string {
	if name, ok := n[code]; ok {
		return name
	}
	return code
}

// PromptBuilder assembles translation instructions around captured Markdown.
// The generated prompt is consumed by an external translation-capable agent;
// this package never invokes a model itself.
type PromptBuilder struct {
	Names LanguageNames
}

// NewPromptBuilder creates a PromptBuilder with the given display-name
// mapping. A nil map falls back to DefaultLanguageNames.
func NewPromptBuilder(names LanguageNames) *PromptBuilder {
	if names == nil {
		names = DefaultLanguageNames()
	}
	return &PromptBuilder{Names: names}
}

// Build returns the translation instruction text for the given Markdown and
// target language code. The full source Markdown is embedded verbatim as the
// suffix of the prompt so downstream tooling can check containment.
func (b *PromptBuilder) Build(markdown, lang string) string {
	name := b.Names.DisplayName(lang)

	var sb strings.Builder
	fmt.Fprintf(&sb, "请将下面的 Markdown 文章完整翻译成%s。\n\n", name)
	sb.WriteString("要求：\n")
	sb.WriteString("1. 保留所有 Markdown 结构元素：标题、列表、引用、表格、链接。\n")
	sb.WriteString("2. 代码块、命令行、URL、文件路径一律保持原样，不要翻译。\n")
	sb.WriteString("3. 在忠实与通顺之间以忠实为先，比例约为 60/40。\n")
	sb.WriteString("4. 输出的第一行必须是翻译后的一级标题（# 开头）。\n")
	sb.WriteString("5. 标题之后空一行，再输出译文正文，正文中不要重复标题。\n")
	sb.WriteString("6. 除译文本身外不要输出任何内容，不要加任何说明或评论。\n")
	sb.WriteString("\n原文如下：\n\n")
	sb.WriteString(markdown)

	return sb.String()
}
