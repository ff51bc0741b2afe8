// Package metrics defines and registers all custom Prometheus metrics for the
// lead console. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// ── Backend metrics ───────────────────────────────────────────────────────────

// BackendRequestsTotal counts calls to the upstream REST backend.
// Labels:
//   - endpoint: logical operation (e.g. "companies.list", "auth.login")
//   - status: HTTP status code, or "network" when no response arrived
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests sent to the upstream backend.",
	},
	[]string{"endpoint", "status"},
)

// BackendRequestDuration measures upstream round-trip latency.
// Label:
//   - endpoint: logical operation
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of upstream backend requests.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"endpoint"},
)

// ForcedLogoutsTotal counts sessions invalidated because the backend answered 401.
var ForcedLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Total number of sessions cleared after an upstream 401.",
	},
)

// SupersededRequestsTotal counts list fetches cancelled by a newer fetch for the same page.
var SupersededRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "superseded_requests_total",
		Help:      "Total number of in-flight list fetches cancelled by a newer one.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts queued notifications.
// Label:
//   - type: success, error, warning or info
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications queued, by type.",
	},
	[]string{"type"},
)

// ── Export metrics ────────────────────────────────────────────────────────────

// ExportJobsTotal counts finished export jobs.
// Labels:
//   - resource: "leads" or "visitors"
//   - result: "done", "failed" or "duplicate"
var ExportJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "export_jobs_total",
		Help:      "Total number of export jobs, by resource and result.",
	},
	[]string{"resource", "result"},
)

// ExportQueueDepth tracks the current number of jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ExportQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "export_queue_depth",
		Help:      "Current number of export jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
