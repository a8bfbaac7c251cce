package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u8_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "m3u8_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "m3u8_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Asset lookup outcomes
const (
	LookupFound    = "found"
	LookupRejected = "rejected"
	LookupMissing  = "missing"
	LookupError    = "error"
)

// Asset metrics
var (
	AssetLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u8_asset_lookups_total",
			Help: "Total number of manifest and segment lookups by outcome",
		},
		[]string{"kind", "outcome"},
	)

	PlayerPagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "m3u8_player_pages_total",
			Help: "Total number of rendered player pages",
		},
	)
)

// Conversion results
const (
	ConversionSuccess = "success"
	ConversionFailure = "failure"
)

// Conversion metrics
var (
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u8_conversions_total",
			Help: "Total number of conversions by result",
		},
		[]string{"result"},
	)

	ConversionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "m3u8_conversion_duration_seconds",
			Help:    "Conversion duration in seconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)
