package main

import (
	"context"
	"io"
	"time"

	"github.com/artmark/artmark"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Lang      string        `short:"l" default:"zh" help:"Target language code for the translation prompt"`
	Root      string        `default:"content/articles" env:"ARTMARK_ROOT" help:"Content root directory"`
	Extractor string        `default:"readability" enum:"readability,trafilatura" help:"Content extraction engine"`
	Timeout   time.Duration `short:"t" help:"Fetch timeout (default: transport default)"`
	Verbose   bool          `short:"v" help:"Log pipeline stages to stderr"`
	URL       string        `arg:"" required:"" help:"Article URL to capture"`
}

// Dependencies holds the wired services for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   artmark.Fetcher
	Extractor artmark.Extractor
	Converter artmark.Converter
	Store     artmark.DocumentStore
	Prompts   *artmark.PromptBuilder
}

// Summary is the machine-readable run report printed to stdout on success.
// Wrapping tooling (e.g., a commit-and-deploy script) parses this line.
type Summary struct {
	OK         bool   `json:"ok"`
	Slug       string `json:"slug"`
	Dir        string `json:"dir"`
	Lang       string `json:"lang"`
	PromptPath string `json:"promptPath"`
}
