package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_api_requests_total",
			Help: "Total number of API requests issued by the portal client",
		},
		[]string{"endpoint", "method", "status"},
	)

	APIRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_api_request_errors_total",
			Help: "Total number of API requests that failed before a response arrived",
		},
		[]string{"endpoint", "method"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "portal_api_request_duration_seconds",
			Help: "Duration of API requests in seconds",
		},
		[]string{"endpoint", "method"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_uploads_total",
			Help: "Total number of document uploads attempted",
		},
		[]string{"outcome"},
	)

	SessionsInvalidated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_sessions_invalidated_total",
			Help: "Number of times the stored session was cleared after a 401",
		},
	)
)
