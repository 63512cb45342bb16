// Package metrics defines and registers all custom Prometheus metrics for the
// salon API. It is the single source of truth for metric names, labels, and
// help strings. Registration happens at import time via promauto; HTTP-level
// request metrics are handled separately by the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - action: "register", "login", or "password_change"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action and result.",
	},
	[]string{"action", "result"},
)

// CatalogMutationsTotal counts admin writes to the service catalog.
// Label:
//   - operation: "create", "update", or "delete"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of catalog write operations, by operation.",
	},
	[]string{"operation"},
)

// CategoryCacheTotal counts category-cache lookups.
// Label:
//   - result: "hit" or "miss"
var CategoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_cache_total",
		Help:      "Total number of category cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
