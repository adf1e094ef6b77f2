package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"wordfreq-go/internal/config"
	"wordfreq-go/internal/metrics"
	"wordfreq-go/internal/pipeline"
)

type flags struct {
	configPath  string
	envFile     string
	minFreq     int
	topN        int
	chart       string
	segmenter   string
	charset     string
	timeout     time.Duration
	robots      bool
	workers     int
	asJSON      bool
	file        string
	metricsAddr string
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "wordfreq [url...]",
		Short: "Word frequency analysis of Chinese web pages",
		Long: `wordfreq fetches web pages, extracts their Chinese text, segments it into
words, drops stopwords and single characters, and prints the most frequent
words together with a chart specification.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fs.StringVar(&f.envFile, "env-file", ".env", "dotenv file with WORDFREQ_* overrides")
	fs.IntVar(&f.minFreq, "min-freq", 0, "minimum word frequency (default from config: 2)")
	fs.IntVar(&f.topN, "top", 0, "number of ranked words to keep (0 = config default)")
	fs.StringVar(&f.chart, "chart", "", "chart kind: wordcloud, bar, pie, line, scatter, radar, funnel")
	fs.StringVar(&f.segmenter, "segmenter", "", "segmenter backend: dict or gse")
	fs.StringVar(&f.charset, "charset", "", "force body charset (default utf-8)")
	fs.DurationVar(&f.timeout, "timeout", 0, "fetch timeout")
	fs.BoolVar(&f.robots, "robots", false, "honour robots.txt")
	fs.IntVar(&f.workers, "workers", 0, "pages analyzed in parallel")
	fs.BoolVar(&f.asJSON, "json", false, "print results as JSON")
	fs.StringVar(&f.file, "file", "", "analyze a local HTML file instead of fetching")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "text", "text or json")

	return cmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, f.logFormat)
	slog.SetDefault(logger)

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				logger.Error("metrics server", "err", err)
			}
		}()
	}

	comp, err := cfg.Components(logger)
	if err != nil {
		return err
	}
	kind, err := cfg.ChartKind()
	if err != nil {
		return err
	}
	p := pipeline.New(comp.Fetcher, comp.Cleaner, comp.Segmenter, comp.Filter, logger)

	var outcomes []pipeline.Outcome
	switch {
	case f.file != "":
		raw, err := os.ReadFile(f.file)
		if err != nil {
			return err
		}
		req := pipeline.Request{URL: f.file, MinFreq: cfg.MinFreq, TopN: cfg.TopN, Chart: kind}
		res, err := p.Analyze(cmd.Context(), string(raw), req)
		outcomes = []pipeline.Outcome{{Request: req, Result: res, Err: err}}
	case len(args) > 0:
		reqs := make([]pipeline.Request, len(args))
		for i, u := range args {
			reqs[i] = pipeline.Request{URL: u, MinFreq: cfg.MinFreq, TopN: cfg.TopN, Chart: kind}
		}
		outcomes = p.RunAll(cmd.Context(), reqs, cfg.Workers)
	default:
		return errors.New("need at least one URL or --file")
	}

	out := cmd.OutOrStdout()
	if f.asJSON {
		if err := writeJSON(out, outcomes); err != nil {
			return err
		}
	} else {
		writeText(out, outcomes)
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d page(s) failed", failed, len(outcomes))
	}
	return nil
}

// loadConfig layers defaults, the YAML file, WORDFREQ_* variables and
// explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	if f.envFile != "" {
		_ = godotenv.Load(f.envFile)
	}

	path := f.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("min-freq") {
		cfg.MinFreq = f.minFreq
	}
	if changed("top") {
		cfg.TopN = f.topN
	}
	if changed("chart") {
		cfg.Chart = f.chart
	}
	if changed("segmenter") {
		cfg.Segmenter = f.segmenter
	}
	if changed("charset") {
		cfg.Fetch.Charset = f.charset
	}
	if changed("timeout") {
		cfg.Fetch.Timeout = f.timeout
	}
	if changed("robots") {
		cfg.Fetch.RespectRobots = f.robots
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	return cfg, nil
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
