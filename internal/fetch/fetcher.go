// Package fetch retrieves raw page content for a URL.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"

	"wordfreq-go/internal/errs"
	"wordfreq-go/internal/metrics"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 4 << 20 // 4 MiB safety cap
	DefaultCharset   = "utf-8"
	DefaultUserAgent = "wordfreq-go/0.1"
)

// ErrDisallowed is the cause recorded when robots.txt forbids a fetch.
var ErrDisallowed = errors.New("disallowed by robots.txt")

// Options configures a Fetcher. Zero values fall back to the defaults above.
type Options struct {
	Timeout   time.Duration
	MaxBytes  int64
	Charset   string // forced body encoding; the server's declaration is ignored
	UserAgent string

	RespectRobots bool
	RobotsTimeout time.Duration

	Client *http.Client
	Logger *slog.Logger
}

// Document is the raw content of one fetched page.
type Document struct {
	URL         string
	Body        string
	Charset     string
	StatusCode  int
	ContentType string
}

// Empty reports whether the fetch succeeded but delivered only whitespace.
func (d Document) Empty() bool {
	return strings.TrimSpace(d.Body) == ""
}

// Fetcher performs single-attempt GET requests.
type Fetcher struct {
	client    *http.Client
	maxBytes  int64
	enc       encoding.Encoding
	charset   string
	userAgent string
	robots    *robotsCache
	logger    *slog.Logger
}

// New validates opts and returns a ready Fetcher.
func New(opts Options) (*Fetcher, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.Charset == "" {
		opts.Charset = DefaultCharset
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.RobotsTimeout <= 0 {
		opts.RobotsTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	enc, name := charset.Lookup(opts.Charset)
	if enc == nil {
		return nil, errs.Invalid("unknown charset %q", opts.Charset)
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	f := &Fetcher{
		client:    client,
		maxBytes:  opts.MaxBytes,
		enc:       enc,
		charset:   name,
		userAgent: opts.UserAgent,
		logger:    opts.Logger,
	}
	if opts.RespectRobots {
		f.robots = newRobotsCache(client, opts.UserAgent, opts.RobotsTimeout)
	}
	return f, nil
}

// Fetch downloads rawURL once. Every failure is returned as *errs.FetchError;
// a successful fetch with an empty body is not an error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Document, error) {
	doc, err := f.fetch(ctx, rawURL)
	if err != nil {
		metrics.FetchErrors.Inc()
		f.logger.Warn("fetch failed", "url", rawURL, "err", err)
		return Document{}, errs.NewFetchError(rawURL, err)
	}
	metrics.PagesFetched.Inc()
	f.logger.Debug("fetched", "url", rawURL, "status", doc.StatusCode, "bytes", len(doc.Body))
	return doc, nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (Document, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Document{}, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Document{}, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if f.robots != nil && !f.robots.Allowed(ctx, u) {
		return Document{}, ErrDisallowed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Document{}, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return Document{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Document{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return Document{}, fmt.Errorf("read body: %w", err)
	}
	metrics.BytesFetched.Add(float64(len(b)))

	body, err := f.enc.NewDecoder().Bytes(b)
	if err != nil {
		return Document{}, fmt.Errorf("decode body as %s: %w", f.charset, err)
	}

	return Document{
		URL:         u.String(),
		Body:        string(body),
		Charset:     f.charset,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
