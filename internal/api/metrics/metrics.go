// Package metrics defines and registers all custom Prometheus metrics for the
// Isplate back-office API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "isplate"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecordMutationsTotal counts lifecycle mutations that completed successfully.
// Labels:
//   - entity: "supplier", "hotel", "payment", "user"
//   - action: "create", "update", "soft_delete", "restore", "hard_delete"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of successful record mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// AuditWriteFailuresTotal counts audit entries that could not be persisted.
// The primary mutation still succeeds; this counter is how the loss stays
// visible operationally.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of activity log writes that failed.",
	},
)

// AssistantAnswersTotal counts assistant answers by which engine produced them.
// Label:
//   - source: "remote" (hosted model) or "local" (rule engine fallback)
var AssistantAnswersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_answers_total",
		Help:      "Total number of assistant answers, by producing engine.",
	},
	[]string{"source"},
)

// TransfersTotal counts dataset imports and exports.
// Labels:
//   - direction: "import" or "export"
//   - format: "xlsx" or "json"
var TransfersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transfers_total",
		Help:      "Total number of dataset imports and exports, by direction and format.",
	},
	[]string{"direction", "format"},
)
