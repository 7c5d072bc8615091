// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables on top of New().
// - Validation errors wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"time"
)

// Dataset source kinds.
const (
	SourceHTTP = "http"
	SourceDir  = "dir"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SourceKind selects where datasets come from: http or dir.
	SourceKind string `koanf:"source_kind"`

	// SourceBaseURL is the data service root when SourceKind is http.
	SourceBaseURL string `koanf:"source_base_url"`

	// SourceDir is the processed export directory when SourceKind is dir.
	SourceDir string `koanf:"source_dir"`

	// FetchTimeoutMS bounds each dataset request.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// MaxConcurrentFetches caps parallel retrievals per view; 0 means no cap.
	MaxConcurrentFetches int `koanf:"max_concurrent_fetches"`

	// TopDomains, TopAcademies and TopConclusion size the rankings.
	TopDomains    int `koanf:"top_domains"`
	TopAcademies  int `koanf:"top_academies"`
	TopConclusion int `koanf:"top_conclusion"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		SourceKind:           SourceHTTP,
		SourceBaseURL:        "http://127.0.0.1:5000",
		SourceDir:            "data/processed",
		FetchTimeoutMS:       15_000,
		MaxConcurrentFetches: 4,
		TopDomains:           15,
		TopAcademies:         20,
		TopConclusion:        10,
	}
}

// FetchTimeout returns FetchTimeoutMS as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}

// Validate checks the values Load cannot coerce.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.SourceKind != SourceHTTP && c.SourceKind != SourceDir:
		return fmt.Errorf("%w: source_kind must be %q or %q, got %q", ErrInvalidConfig, SourceHTTP, SourceDir, c.SourceKind)
	case c.SourceKind == SourceHTTP && c.SourceBaseURL == "":
		return fmt.Errorf("%w: source_base_url must not be empty", ErrInvalidConfig)
	case c.SourceKind == SourceDir && c.SourceDir == "":
		return fmt.Errorf("%w: source_dir must not be empty", ErrInvalidConfig)
	case c.FetchTimeoutMS <= 0:
		return fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	case c.MaxConcurrentFetches < 0:
		return fmt.Errorf("%w: max_concurrent_fetches must not be negative", ErrInvalidConfig)
	case c.TopDomains <= 0 || c.TopAcademies <= 0 || c.TopConclusion <= 0:
		return fmt.Errorf("%w: top_* sizes must be positive", ErrInvalidConfig)
	}
	return nil
}
