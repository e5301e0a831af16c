package lexicon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultURL points at the cmusphinx release of the CMU Pronouncing Dictionary.
const DefaultURL = "https://raw.githubusercontent.com/cmusphinx/cmudict/master/cmudict.dict"

const cacheFile = "cmudict.dict"

// ErrNoSource is returned when neither a local path nor a URL is configured.
var ErrNoSource = errors.New("lexicon: no path or url configured")

// Loader resolves the pronunciation dictionary from a local file, the
// on-disk cache, or a download that then populates the cache.
type Loader struct {
	Path       string
	URL        string
	CacheDir   string
	Client     *http.Client
	RetryDelay time.Duration
	// Timeout bounds each attempt separately; zero means no limit.
	Timeout    time.Duration
	Log        *slog.Logger
}

// Load returns the parsed dictionary. A failed attempt is retried once.
func (l *Loader) Load(ctx context.Context) (*Dictionary, error) {
	log := l.logger()
	if l.Path == "" && l.URL == "" {
		return nil, ErrNoSource
	}

	var dict *Dictionary
	attempt := 0
	op := func() error {
		attempt++
		d, err := l.attempt(ctx)
		if err != nil {
			log.Warn("lexicon load failed", slog.Int("attempt", attempt), slog.Any("error", err))
			return err
		}
		dict = d
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(l.RetryDelay), 1), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return dict, nil
}

func (l *Loader) logger() *slog.Logger {
	if l.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Log
}

func (l *Loader) attempt(ctx context.Context) (*Dictionary, error) {
	if l.Timeout <= 0 {
		return l.loadOnce(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, l.Timeout)
	defer cancel()
	return l.loadOnce(attemptCtx)
}

func (l *Loader) loadOnce(ctx context.Context) (*Dictionary, error) {
	log := l.logger()

	if l.Path != "" {
		log.Debug("loading lexicon from file", slog.String("path", l.Path))
		return parseFile(l.Path, log)
	}

	if l.CacheDir == "" {
		body, err := l.fetch(ctx)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		d, stats, err := Parse(body)
		if err != nil {
			return nil, err
		}
		log.Info("cmu parsed", slog.Int("words", stats.UniqueWords))
		return d, nil
	}

	path := filepath.Join(l.CacheDir, cacheFile)
	if _, err := os.Stat(path); err == nil {
		d, err := parseFile(path, log)
		if err == nil {
			log.Debug("lexicon cache hit", slog.String("path", path))
			return d, nil
		}
		log.Warn("discarding unreadable lexicon cache", slog.String("path", path), slog.Any("error", err))
		_ = os.Remove(path)
	}

	if err := l.download(ctx, path); err != nil {
		return nil, err
	}
	return parseFile(path, log)
}

func parseFile(path string, log *slog.Logger) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	d, stats, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Info("cmu parsed", slog.Int("words", stats.UniqueWords), slog.Int("comment_lines", stats.CommentLines))
	return d, nil
}

func (l *Loader) fetch(ctx context.Context) (io.ReadCloser, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", l.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", l.URL, resp.Status)
	}
	return resp.Body, nil
}

// download writes the remote dictionary to path via a temp file so a partial
// transfer never becomes the cache.
func (l *Loader) download(ctx context.Context, path string) error {
	body, err := l.fetch(ctx)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), cacheFile+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, body)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("install cache: %w", err)
	}

	l.logger().Info("lexicon downloaded", slog.String("url", l.URL), slog.Int64("bytes", n))
	return nil
}
