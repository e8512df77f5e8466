// Package metrics defines the prometheus collectors exported by the bot and
// the HTTP server that exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels of InlineQueriesTotal.
const (
	ResultOK    = "ok"
	ResultEmpty = "empty"
	ResultError = "error"
)

var (
	InlineQueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tmdbot",
		Name:      "inline_queries_total",
		Help:      "Inline queries handled, by result (ok, empty, error).",
	}, []string{"result"})

	RenderDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tmdbot",
		Name:      "render_duration_seconds",
		Help:      "Time to fetch details and render one result card, by media type.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"media_type"})

	TMDBRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tmdbot",
		Name:      "tmdb_requests_total",
		Help:      "Requests sent to the TMDB API, by endpoint and HTTP status.",
	}, []string{"endpoint", "status"})

	TMDBRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tmdbot",
		Name:      "tmdb_request_duration_seconds",
		Help:      "TMDB API request duration in seconds, by endpoint.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	TMDBUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tmdbot",
		Name:      "tmdb_up",
		Help:      "Whether the last TMDB health probe succeeded (1) or failed (0).",
	})
)

// Register adds every collector to reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		InlineQueriesTotal,
		RenderDuration,
		TMDBRequestsTotal,
		TMDBRequestDuration,
		TMDBUp,
	)
}
