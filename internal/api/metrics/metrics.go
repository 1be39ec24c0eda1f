// Package metrics defines and registers all custom Prometheus metrics for the
// MaintenOx API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "maintenox"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "user_not_found", "invalid_credentials", "role_mismatch"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// JobsCreatedTotal counts newly created jobs.
// Label:
//   - category: the job category (e.g. "HVAC", "Plumbing")
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs created, by category.",
	},
	[]string{"category"},
)

// JobStatusTransitionsTotal counts job status changes.
// Label:
//   - status: the new status applied ("Pending", "Ongoing", "Completed")
var JobStatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_status_transitions_total",
		Help:      "Total number of job status changes, by resulting status.",
	},
	[]string{"status"},
)

// NotificationsBroadcastTotal counts broadcast notifications.
var NotificationsBroadcastTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_broadcast_total",
		Help:      "Total number of notifications broadcast by admins.",
	},
)

// StorageConflictsTotal counts optimistic-concurrency aborts in the key-value
// store (a concurrent writer won the check-and-set race).
var StorageConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_conflicts_total",
		Help:      "Total number of collection updates aborted by a concurrent write.",
	},
)
