// Package metrics exposes Prometheus instrumentation for the
// orchestrator. Counters are incremented by the pod doing the work, so
// cluster-wide totals are a sum over pods; cluster-wide state gauges
// come from the database-backed StateCollector instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunEvents counts workflow lifecycle events emitted by this pod,
	// labelled by event type (run_started, phase_completed, ...).
	RunEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prospector_run_events_total",
		Help: "Workflow run events emitted, by event type.",
	}, []string{"event"})

	// ToolInvocations counts tool dispatches, labelled by tool id and
	// outcome (success, failure, denied, rejected).
	ToolInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prospector_tool_invocations_total",
		Help: "Tool invocations dispatched, by tool and outcome.",
	}, []string{"tool", "outcome"})

	// HTTPRequests counts API requests by method, route, and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prospector_http_requests_total",
		Help: "API requests served, by method, route, and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration tracks API request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "prospector_http_request_duration_seconds",
		Help:    "API request latency, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// ObserveRunEvent records one emitted run event.
func ObserveRunEvent(event string) {
	RunEvents.WithLabelValues(event).Inc()
}

// ObserveInvocation records one tool dispatch outcome.
func ObserveInvocation(toolID, outcome string) {
	ToolInvocations.WithLabelValues(toolID, outcome).Inc()
}
