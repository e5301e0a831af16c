// Text Analyzer - readability and style statistics for a block of text
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"

	textanalyzer "github.com/nnikolov3/text-analyzer"
	"github.com/nnikolov3/text-analyzer/internal/config"
	"github.com/nnikolov3/text-analyzer/lexicon"
	"github.com/tiktoken-go/tokenizer"
)

const (
	exitError = 1
	exitUsage = 2
)

var (
	ErrTextRequired = errors.New("input text argument is required")
	ErrTooManyArgs  = errors.New("expected exactly one input text argument")
)

type options struct {
	text    string
	hasText bool
	extra   int
	help    bool
	json    bool
}

func main() {
	opts := parseFlags()

	if opts.help {
		showHelp(os.Stdout)
		return
	}

	if err := checkArgs(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		showHelp(os.Stderr)
		os.Exit(exitUsage)
	}

	cfg, err := config.Load()
	if err != nil {
		handleError(err, opts.json)
		return
	}
	logger := newLogger(cfg)

	analyzer, err := setup(context.Background(), cfg, logger, opts.json)
	if err != nil {
		handleError(err, opts.json)
		return
	}

	if err := outputResult(os.Stdout, analyzer.Analyze(opts.text), opts.json); err != nil {
		handleError(err, opts.json)
	}
}

func parseFlags() options {
	var opts options
	flag.BoolVar(&opts.json, "json", false, "Output results in JSON format")
	flag.BoolVar(&opts.help, "help", false, "Show help")
	flag.Parse()

	if flag.NArg() > 0 {
		opts.text = flag.Arg(0)
		opts.hasText = true
		opts.extra = flag.NArg() - 1
	}
	return opts
}

func checkArgs(opts options) error {
	if !opts.hasText {
		return ErrTextRequired
	}
	if opts.extra > 0 {
		return ErrTooManyArgs
	}
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.Level()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// setup loads the lexicon and sentence model. Each is retried once before
// the run is aborted; FetchTimeout applies to every lexicon attempt on its own.
func setup(ctx context.Context, cfg *config.Config, logger *slog.Logger, withTokens bool) (*textanalyzer.Analyzer, error) {
	loader := &lexicon.Loader{
		Path:       cfg.LexiconPath,
		URL:        cfg.LexiconURL,
		CacheDir:   cfg.CacheDir,
		Client:     &http.Client{Timeout: cfg.FetchTimeout},
		RetryDelay: cfg.RetryDelay,
		Timeout:    cfg.FetchTimeout,
		Log:        logger,
	}
	dict, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	seg, err := textanalyzer.LoadSegmenter(ctx, cfg.RetryDelay, logger)
	if err != nil {
		return nil, err
	}

	opts := []textanalyzer.Option{textanalyzer.WithLogger(logger)}
	if withTokens {
		counter := textanalyzer.NewTokenCounterWithEncoding(tokenizer.Encoding(cfg.Encoding))
		if err := counter.Validate(); err != nil {
			logger.Warn("llm token counting falls back to word count", slog.Any("error", err))
		}
		opts = append(opts, textanalyzer.WithTokenCounter(counter))
	}

	return textanalyzer.NewAnalyzer(seg, dict, opts...), nil
}

func outputResult(w io.Writer, stats textanalyzer.Stats, useJSON bool) error {
	if useJSON {
		output, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	}
	_, err := fmt.Fprintln(w, stats.Render())
	return err
}

func handleError(err error, useJSON bool) {
	if useJSON {
		errorOutput := map[string]string{"error": err.Error()}
		output, _ := json.MarshalIndent(errorOutput, "", "  ")
		fmt.Println(string(output))
	} else {
		log.Printf("Error: %v\n", err)
	}
	os.Exit(exitError)
}

func showHelp(w io.Writer) {
	fmt.Fprint(w, `Text Analyzer - readability and style statistics

Usage: text-analyzer [options] TEXT

Arguments:
  TEXT              Text to analyze (required, quote it)

Options:
  -json             Output results in JSON format (adds LLM token count)
  -help             Show this help message

Report:
  Adverb usage ('told'/'said', 'but'/'and', WH-adverbs), average word
  length, unique word fraction, total syllables, words and sentences,
  and the Flesch Reading Ease score.

Environment:
  TEXT_ANALYZER_CONFIG          Optional YAML config file
  TEXT_ANALYZER_LEXICON_PATH    Local CMU dict file (skips download)
  TEXT_ANALYZER_LEXICON_URL     CMU dict download URL
  TEXT_ANALYZER_CACHE_DIR       Lexicon cache directory
  TEXT_ANALYZER_FETCH_TIMEOUT   Lexicon download timeout (default 30s)
  TEXT_ANALYZER_RETRY_DELAY     Delay before the single retry (default 1s)
  TEXT_ANALYZER_ENCODING        tiktoken encoding for -json (default cl100k_base)
  LOG_LEVEL                     debug, info, warn, error (default warn)

Examples:
  text-analyzer "The cat sat. The dog ran fast!"
  text-analyzer -json "Why and how, but when?"

Exit codes:
  0  Success
  1  Error (lexicon or sentence model unavailable, etc.)
  2  Usage error (missing or extra arguments)
`)
}
