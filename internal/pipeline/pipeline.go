// Package pipeline runs fetch → clean → segment → filter → count → rank
// for one document at a time.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"wordfreq-go/internal/chart"
	"wordfreq-go/internal/cleaner"
	"wordfreq-go/internal/errs"
	"wordfreq-go/internal/fetch"
	"wordfreq-go/internal/filter"
	"wordfreq-go/internal/freq"
	"wordfreq-go/internal/metrics"
	"wordfreq-go/internal/segment"
)

// Fetcher retrieves a document. *fetch.Fetcher implements it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (fetch.Document, error)
}

// Request is one analysis job.
type Request struct {
	URL     string
	MinFreq int
	TopN    int // 0 keeps every entry
	Chart   chart.Kind
}

// Result is everything the presentation layer needs for one document.
type Result struct {
	ID     string
	URL    string
	Text   string   // normalized text, for display
	Tokens []string // filtered tokens, in document order
	Table  *freq.Table
	Series freq.Series
	Chart  chart.Spec
}

// Pipeline wires the stages together. It holds no per-run state and is safe
// for concurrent use when its stages are.
type Pipeline struct {
	fetcher   Fetcher
	cleaner   *cleaner.Cleaner
	segmenter segment.Segmenter
	filter    *filter.Filter
	logger    *slog.Logger
}

// New returns a Pipeline. A nil logger means slog.Default().
func New(f Fetcher, c *cleaner.Cleaner, s segment.Segmenter, fl *filter.Filter, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		fetcher:   f,
		cleaner:   c,
		segmenter: s,
		filter:    fl,
		logger:    logger,
	}
}

// Validate checks req before any work is done.
func (r Request) Validate() error {
	if r.URL == "" {
		return errs.Invalid("url is empty")
	}
	return r.validateAnalysis()
}

func (r Request) validateAnalysis() error {
	if r.MinFreq < 1 {
		return errs.Invalid("min_freq must be >= 1, got %d", r.MinFreq)
	}
	if r.TopN < 0 {
		return errs.Invalid("top_n must be >= 0, got %d", r.TopN)
	}
	if !r.Chart.Valid() {
		return errs.Invalid("unsupported chart kind %d", int(r.Chart))
	}
	return nil
}

// Run fetches req.URL and analyzes it. Errors are ErrInvalidArgument,
// a *errs.FetchError, ErrEmptyContent or the context's error.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		metrics.Runs.WithLabelValues("invalid").Inc()
		return nil, err
	}

	start := time.Now()
	doc, err := p.fetcher.Fetch(ctx, req.URL)
	metrics.StageSeconds.WithLabelValues("fetch").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.Runs.WithLabelValues("fetch_error").Inc()
		var fe *errs.FetchError
		if !errors.As(err, &fe) {
			err = errs.NewFetchError(req.URL, err)
		}
		return nil, err
	}
	if doc.Empty() {
		metrics.Runs.WithLabelValues("empty").Inc()
		return nil, fmt.Errorf("%s: %w: empty body", req.URL, errs.ErrEmptyContent)
	}

	return p.analyze(ctx, doc.Body, req)
}

// Analyze runs every stage after fetching on raw markup.
func (p *Pipeline) Analyze(ctx context.Context, raw string, req Request) (*Result, error) {
	if err := req.validateAnalysis(); err != nil {
		metrics.Runs.WithLabelValues("invalid").Inc()
		return nil, err
	}
	return p.analyze(ctx, raw, req)
}

func (p *Pipeline) analyze(ctx context.Context, raw string, req Request) (*Result, error) {
	id := uuid.NewString()
	log := p.logger.With("run", id, "url", req.URL)

	var text string
	p.stage("clean", func() { text = p.cleaner.Clean(raw) })
	if text == "" {
		metrics.Runs.WithLabelValues("empty").Inc()
		log.Warn("no target-script text after cleaning", "raw_bytes", len(raw))
		return nil, fmt.Errorf("%s: %w", req.URL, errs.ErrEmptyContent)
	}
	if err := p.checkpoint(ctx); err != nil {
		return nil, err
	}

	var tokens []string
	p.stage("segment", func() { tokens = p.segmenter.Segment(text) })
	metrics.TokensSegmented.Add(float64(len(tokens)))
	if err := p.checkpoint(ctx); err != nil {
		return nil, err
	}

	var kept []string
	p.stage("filter", func() { kept = p.filter.Apply(tokens) })
	metrics.TokensKept.Add(float64(len(kept)))

	var table *freq.Table
	var err error
	p.stage("aggregate", func() { table, err = freq.Aggregate(kept, req.MinFreq) })
	if err != nil {
		metrics.Runs.WithLabelValues("invalid").Inc()
		return nil, err
	}

	var series freq.Series
	p.stage("rank", func() { series = freq.Rank(table, req.TopN) })

	spec, err := chart.Build(req.Chart, series)
	if err != nil {
		metrics.Runs.WithLabelValues("invalid").Inc()
		return nil, err
	}

	log.Debug("analyzed",
		"runes", len([]rune(text)),
		"tokens", len(tokens),
		"kept", len(kept),
		"distinct", table.Len(),
		"ranked", len(series),
	)
	metrics.Runs.WithLabelValues("ok").Inc()

	return &Result{
		ID:     id,
		URL:    req.URL,
		Text:   text,
		Tokens: kept,
		Table:  table,
		Series: series,
		Chart:  spec,
	}, nil
}

func (p *Pipeline) stage(name string, fn func()) {
	start := time.Now()
	fn()
	metrics.StageSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

// checkpoint aborts between stages once ctx is done.
func (p *Pipeline) checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		metrics.Runs.WithLabelValues("canceled").Inc()
		return err
	}
	return nil
}
