package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/artmark/artmark"
	"github.com/artmark/artmark/capture"
	"github.com/artmark/artmark/fs"
	"github.com/artmark/artmark/htmltomarkdown"
	arthttp "github.com/artmark/artmark/http"
	"github.com/artmark/artmark/readability"
	artslog "github.com/artmark/artmark/slog"
	"github.com/artmark/artmark/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("artmark"),
		kong.Description("Capture a web article as Markdown with a translation prompt"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	httpFetcher := arthttp.NewFetcher(arthttp.WithTimeout(cli.Timeout))
	deps.Fetcher = artslog.NewFetcher(httpFetcher, logger)
	defer deps.Fetcher.Close()

	var extractor artmark.Extractor
	switch cli.Extractor {
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = readability.NewExtractor()
	}
	deps.Extractor = artslog.NewExtractor(extractor, logger)

	deps.Converter = htmltomarkdown.NewConverter()
	deps.Store = fs.NewWriter(cli.Root)
	deps.Prompts = artmark.NewPromptBuilder(nil)

	return runCapture(deps, cli)
}

// runCapture executes one capture run and prints the JSON summary.
func runCapture(deps *Dependencies, cli *CLI) error {
	pipeline := &capture.Pipeline{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Converter: deps.Converter,
		Store:     deps.Store,
		Prompts:   deps.Prompts,
	}

	result, err := pipeline.Run(deps.Ctx, cli.URL, cli.Lang)
	if err != nil {
		return err
	}

	summary := Summary{
		OK:         true,
		Slug:       result.Slug,
		Dir:        result.Dir,
		Lang:       result.Lang,
		PromptPath: result.PromptPath,
	}

	return json.NewEncoder(deps.Stdout).Encode(summary)
}
