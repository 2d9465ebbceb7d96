// Package metrics holds the Prometheus instruments of the service. All
// collectors are registered with the global registry, so mounting
// promhttp.Handler() is enough to expose them on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "channeld"

// Storage statement outcomes. They describe what the driver returned,
// not how the error was reported to the client.
const (
	ResultOK      = "ok"
	ResultNoRows  = "no_rows"
	ResultDBError = "db_error"
	ResultError   = "error"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template, method and final status code.",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template and method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	StorageStatementDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_statement_duration_seconds",
			Help:      "Latency of single storage statements by statement name and outcome.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"statement", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		StorageStatementDuration,
	)
}

// ObserveStatement records one storage statement that started at start.
func ObserveStatement(statement, result string, start time.Time) {
	StorageStatementDuration.WithLabelValues(statement, result).Observe(time.Since(start).Seconds())
}
