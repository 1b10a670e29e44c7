// Package metrics defines all custom Prometheus metrics for the admin API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics are registered with the default registry at package
// init via promauto and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ModerationDecisionsTotal counts recipe status decisions.
// Label:
//   - status: the status applied ("pending", "approved", "rejected")
var ModerationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_decisions_total",
		Help:      "Total number of recipe moderation decisions, by resulting status.",
	},
	[]string{"status"},
)

// AccountActionsTotal counts privileged account mutations.
// Label:
//   - action: "set_role", "suspend", "delete", "change_password"
var AccountActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_actions_total",
		Help:      "Total number of account administration actions.",
	},
	[]string{"action"},
)

// BlogWritesTotal counts blog create/update/delete operations.
// Label:
//   - op: "create", "update", "delete"
var BlogWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blog_writes_total",
		Help:      "Total number of blog write operations.",
	},
	[]string{"op"},
)

// ActivityFeedDuration measures how long one activity feed aggregation
// takes, covering all three store fetches and the merge.
var ActivityFeedDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_feed_duration_seconds",
		Help:      "Duration of recent activity feed aggregation.",
		Buckets:   prometheus.DefBuckets,
	},
)
