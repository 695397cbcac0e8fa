package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RateRequestsTotal       prometheus.Counter
	ConversionRequestsTotal prometheus.Counter

	// result: exact, fallback, miss, bypass
	CacheLookupsTotal *prometheus.CounterVec
	CachedDays        prometheus.Gauge

	// outcome: success, transport_error, parse_error
	FeedFetchesTotal  *prometheus.CounterVec
	FeedFetchDuration *prometheus.HistogramVec
	// Resolutions whose feed fetch was shared with concurrent callers.
	FeedFetchesShared *prometheus.CounterVec
}

// NewMetrics registers every collector with reg. Tests pass a fresh
// prometheus.NewRegistry() so instances do not collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		RateRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_requests_total",
				Help: "Total number of exchange rate requests",
			},
		),

		ConversionRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "conversion_requests_total",
				Help: "Total number of currency conversion requests",
			},
		),

		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_cache_lookups_total",
				Help: "Rate cache lookups by result",
			},
			[]string{"result"},
		),

		CachedDays: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rate_cache_days",
				Help: "Number of days held in the rate cache",
			},
		),

		FeedFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_fetches_total",
				Help: "Upstream feed fetches by window and outcome",
			},
			[]string{"window", "outcome"},
		),

		FeedFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "feed_fetch_duration_seconds",
				Help:    "Upstream feed fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"window"},
		),

		FeedFetchesShared: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_fetches_shared_total",
				Help: "Resolutions whose feed fetch was shared with concurrent callers",
			},
			[]string{"window"},
		),
	}
}
