package config

import (
	"fmt"
	"log/slog"

	"wordfreq-go/internal/chart"
	"wordfreq-go/internal/cleaner"
	"wordfreq-go/internal/errs"
	"wordfreq-go/internal/fetch"
	"wordfreq-go/internal/filter"
	"wordfreq-go/internal/segment"
)

// Components holds the stages built from a Config.
type Components struct {
	Fetcher   *fetch.Fetcher
	Cleaner   *cleaner.Cleaner
	Segmenter segment.Segmenter
	Filter    *filter.Filter
}

// Script parses ScriptRanges; no ranges means Han.
func (c *Config) Script() (cleaner.Script, error) {
	if len(c.ScriptRanges) == 0 {
		return cleaner.Han, nil
	}
	s, err := cleaner.ParseScript(c.ScriptRanges)
	if err != nil {
		return nil, errs.Invalid("script_ranges: %v", err)
	}
	return s, nil
}

// StopwordSet builds the immutable stopword set.
func (c *Config) StopwordSet() filter.StopwordSet {
	words := c.Stopwords
	if words == nil {
		words = filter.DefaultStopwords().Words()
	}
	all := make([]string, 0, len(words)+len(c.ExtraStopwords))
	all = append(all, words...)
	all = append(all, c.ExtraStopwords...)
	return filter.NewStopwordSet(all)
}

// ChartKind parses Chart.
func (c *Config) ChartKind() (chart.Kind, error) {
	return chart.ParseKind(c.Chart)
}

// FetchOptions maps the fetch section onto fetch.Options.
func (c *Config) FetchOptions(logger *slog.Logger) fetch.Options {
	return fetch.Options{
		Timeout:       c.Fetch.Timeout,
		MaxBytes:      c.Fetch.MaxBytes,
		Charset:       c.Fetch.Charset,
		UserAgent:     c.Fetch.UserAgent,
		RespectRobots: c.Fetch.RespectRobots,
		Logger:        logger,
	}
}

// NewSegmenter builds the configured segmenter. User dictionaries extend
// the built-in one.
func (c *Config) NewSegmenter(logger *slog.Logger) (segment.Segmenter, error) {
	dict, err := segment.DefaultDictionary()
	if err != nil {
		return nil, err
	}
	for _, path := range c.DictPaths {
		if err := dict.LoadFile(path); err != nil {
			return nil, fmt.Errorf("load user dictionary: %w", err)
		}
	}
	base := segment.NewDictSegmenter(dict)

	switch c.Segmenter {
	case SegmenterDict, "":
		return base, nil
	case SegmenterGSE:
		gse, err := segment.NewGSESegmenter(base, logger)
		if err != nil {
			return nil, err
		}
		return gse, nil
	default:
		return nil, errs.Invalid("unknown segmenter %q", c.Segmenter)
	}
}

// Components validates c and builds every stage.
func (c *Config) Components(logger *slog.Logger) (*Components, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	f, err := fetch.New(c.FetchOptions(logger))
	if err != nil {
		return nil, fmt.Errorf("build fetcher: %w", err)
	}
	script, err := c.Script()
	if err != nil {
		return nil, err
	}
	seg, err := c.NewSegmenter(logger)
	if err != nil {
		return nil, fmt.Errorf("build segmenter: %w", err)
	}

	return &Components{
		Fetcher:   f,
		Cleaner:   cleaner.New(script, logger),
		Segmenter: seg,
		Filter:    filter.New(c.StopwordSet(), c.MinRunes),
	}, nil
}
