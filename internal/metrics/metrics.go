package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quickmove"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
)

// Business metrics
var (
	// QuotesSubmitted counts intake outcomes: accepted, invalid, or
	// dispatch_failed (validated but at least one notification failed).
	QuotesSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_submitted_total",
			Help:      "Total number of quote submissions by outcome",
		},
		[]string{"outcome"},
	)

	// EmailsDispatched counts individual notification sends.
	EmailsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_dispatched_total",
			Help:      "Total number of notification emails dispatched",
		},
		[]string{"kind", "status"},
	)
)

// Outcome label values for QuotesSubmitted.
const (
	OutcomeAccepted       = "accepted"
	OutcomeInvalid        = "invalid"
	OutcomeDispatchFailed = "dispatch_failed"
)

// Label values for EmailsDispatched.
const (
	KindStaff    = "staff"
	KindCustomer = "customer"

	StatusSent   = "sent"
	StatusFailed = "failed"
)
