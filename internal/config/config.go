// Package config loads pipeline settings from YAML and environment
// overrides and builds the stage components from them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"wordfreq-go/internal/chart"
	"wordfreq-go/internal/errs"
	"wordfreq-go/internal/fetch"
	"wordfreq-go/internal/filter"
	"wordfreq-go/internal/freq"
)

// Segmenter backends.
const (
	SegmenterDict = "dict"
	SegmenterGSE  = "gse"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDFREQ_"

// Config is the full set of recognized options.
type Config struct {
	// Stopwords replaces the built-in list when non-nil.
	Stopwords      []string `yaml:"stopwords"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
	MinRunes       int      `yaml:"min_runes"`

	// ScriptRanges are hex rune ranges such as "4e00-9fa5".
	ScriptRanges []string `yaml:"script_ranges"`

	Segmenter string   `yaml:"segmenter"`
	DictPaths []string `yaml:"dict_paths"`

	Fetch Fetch `yaml:"fetch"`

	MinFreq int    `yaml:"min_freq"`
	TopN    int    `yaml:"top_n"`
	Chart   string `yaml:"chart"`
	Workers int    `yaml:"workers"`

	LogLevel    string `yaml:"log_level"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Fetch groups the fetcher options.
type Fetch struct {
	Charset       string        `yaml:"charset"`
	UserAgent     string        `yaml:"user_agent"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxBytes      int64         `yaml:"max_bytes"`
	RespectRobots bool          `yaml:"respect_robots"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		MinRunes:     filter.DefaultMinRunes,
		ScriptRanges: []string{"4e00-9fa5"},
		Segmenter:    SegmenterDict,
		Fetch: Fetch{
			Charset:   fetch.DefaultCharset,
			UserAgent: fetch.DefaultUserAgent,
			Timeout:   fetch.DefaultTimeout,
			MaxBytes:  fetch.DefaultMaxBytes,
		},
		MinFreq:  2,
		TopN:     freq.DefaultTopN,
		Chart:    chart.WordCloud.String(),
		Workers:  4,
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from WORDFREQ_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errs.Invalid("%s%s=%q is not an integer", EnvPrefix, name, v)
		}
		*dst = n
		return nil
	}

	str("SEGMENTER", &c.Segmenter)
	str("CHART", &c.Chart)
	str("LOG_LEVEL", &c.LogLevel)
	str("METRICS_ADDR", &c.MetricsAddr)
	str("CHARSET", &c.Fetch.Charset)
	str("USER_AGENT", &c.Fetch.UserAgent)

	for name, dst := range map[string]*int{
		"MIN_FREQ":  &c.MinFreq,
		"TOP_N":     &c.TopN,
		"MIN_RUNES": &c.MinRunes,
		"WORKERS":   &c.Workers,
	} {
		if err := num(name, dst); err != nil {
			return err
		}
	}

	if v, ok := lookup(EnvPrefix + "TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errs.Invalid("%sTIMEOUT=%q: %v", EnvPrefix, v, err)
		}
		c.Fetch.Timeout = d
	}
	if v, ok := lookup(EnvPrefix + "RESPECT_ROBOTS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errs.Invalid("%sRESPECT_ROBOTS=%q is not a boolean", EnvPrefix, v)
		}
		c.Fetch.RespectRobots = b
	}
	if v, ok := lookup(EnvPrefix + "STOPWORDS"); ok && v != "" {
		c.Stopwords = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "DICT_PATHS"); ok && v != "" {
		c.DictPaths = splitList(v)
	}
	return nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.MinFreq < 1 {
		return errs.Invalid("min_freq must be >= 1, got %d", c.MinFreq)
	}
	if c.TopN < 0 {
		return errs.Invalid("top_n must be >= 0, got %d", c.TopN)
	}
	if c.MinRunes < 1 {
		return errs.Invalid("min_runes must be >= 1, got %d", c.MinRunes)
	}
	if c.Workers < 1 {
		return errs.Invalid("workers must be >= 1, got %d", c.Workers)
	}
	if _, err := chart.ParseKind(c.Chart); err != nil {
		return err
	}
	switch c.Segmenter {
	case SegmenterDict, SegmenterGSE:
	default:
		return errs.Invalid("unknown segmenter %q", c.Segmenter)
	}
	if _, err := c.Script(); err != nil {
		return err
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
