// Package metrics defines the Prometheus collectors exported by the API.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts HTTP requests by method, route pattern and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bloggers_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records request latency in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bloggers_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthRejectionsTotal counts requests rejected by an auth gate.
	AuthRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bloggers_auth_rejections_total",
			Help: "Requests rejected by an authentication gate",
		},
		[]string{"gate", "reason"},
	)

	// ValidationFailuresTotal counts field errors reported by the validation pipeline.
	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bloggers_validation_failures_total",
			Help: "Field validation failures",
		},
		[]string{"resource", "field"},
	)

	// RateLimitedTotal counts requests rejected by the login rate limiter.
	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bloggers_ratelimit_rejected_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		AuthRejectionsTotal,
		ValidationFailuresTotal,
		RateLimitedTotal,
	)
}
