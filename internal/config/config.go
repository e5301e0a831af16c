// Package config loads text-analyzer settings from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable holding the optional YAML config path.
const PathEnv = "TEXT_ANALYZER_CONFIG"

// Config holds runtime settings.
type Config struct {
	LexiconPath  string        `yaml:"lexicon_path"  env:"TEXT_ANALYZER_LEXICON_PATH"`
	LexiconURL   string        `yaml:"lexicon_url"   env:"TEXT_ANALYZER_LEXICON_URL"   env-default:"https://raw.githubusercontent.com/cmusphinx/cmudict/master/cmudict.dict"`
	CacheDir     string        `yaml:"cache_dir"     env:"TEXT_ANALYZER_CACHE_DIR"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"TEXT_ANALYZER_FETCH_TIMEOUT" env-default:"30s"`
	RetryDelay   time.Duration `yaml:"retry_delay"   env:"TEXT_ANALYZER_RETRY_DELAY"   env-default:"1s"`
	Encoding     string        `yaml:"encoding"      env:"TEXT_ANALYZER_ENCODING"      env-default:"cl100k_base"`
	LogLevel     string        `yaml:"log_level"     env:"LOG_LEVEL"                   env-default:"warn"`
}

// Load reads configuration. Priority: ENV > YAML > defaults.
// The YAML file is only read when TEXT_ANALYZER_CONFIG is set.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv(PathEnv); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.CacheDir == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			cfg.CacheDir = filepath.Join(dir, "text-analyzer")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.LexiconPath == "" && c.LexiconURL == "" {
		errs = append(errs, errors.New("lexicon_path or lexicon_url is required"))
	}
	if c.FetchTimeout <= 0 {
		errs = append(errs, errors.New("fetch_timeout must be positive"))
	}
	if c.RetryDelay < 0 {
		errs = append(errs, errors.New("retry_delay must not be negative"))
	}
	if c.Encoding == "" {
		errs = append(errs, errors.New("encoding is required"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel into a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
