package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordfreq_pages_fetched_total",
		Help: "Total number of pages successfully fetched",
	})
	BytesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordfreq_bytes_fetched_total",
		Help: "Total bytes downloaded",
	})
	FetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordfreq_fetch_errors_total",
		Help: "Total number of failed fetches",
	})
	TokensSegmented = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordfreq_tokens_segmented_total",
		Help: "Tokens produced by the segmenter before filtering",
	})
	TokensKept = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordfreq_tokens_kept_total",
		Help: "Tokens surviving the stopword and length filter",
	})
	Runs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordfreq_runs_total",
		Help: "Pipeline runs by outcome",
	}, []string{"outcome"})
	StageSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordfreq_stage_duration_seconds",
		Help:    "Time spent in each pipeline stage",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
)

func init() {
	prometheus.MustRegister(PagesFetched, BytesFetched, FetchErrors,
		TokensSegmented, TokensKept, Runs, StageSeconds)
}

// Serve exposes /metrics on addr. It blocks like http.ListenAndServe.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
