package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "companion_api_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "companion_api_active_connections",
			Help: "Number of active connections",
		},
	)

	// AuditEntries tracks audit log appends
	AuditEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "companion_api_audit_entries_total",
			Help: "Number of audit log entries appended",
		},
		[]string{"action"},
	)

	// EscalationsTriggered tracks caregiver escalations recorded by
	// check-in status evaluations
	EscalationsTriggered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "companion_api_escalations_total",
			Help: "Number of caregiver escalations recorded",
		},
	)

	// AdviceRequests tracks advice agent requests by pipeline outcome
	AdviceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "companion_api_advice_requests_total",
			Help: "Number of advice requests by outcome",
		},
		[]string{"outcome"},
	)
)
