// Package metrics defines the custom Prometheus metrics for the catalog
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// OperationsTotal counts resolved GraphQL operations.
// Labels:
//   - operation: the operation name (e.g. "products", "login")
//   - outcome: "ok" or the failure code (e.g. "UNAUTHORIZED", "CONFLICT")
var OperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total number of GraphQL operations resolved, by outcome.",
	},
	[]string{"operation", "outcome"},
)

// OperationDuration measures how long a successful operation takes from
// dispatch to response.
var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of successful GraphQL operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// CacheTotal counts product-list cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_total",
		Help:      "Total number of product list cache lookups, by result.",
	},
	[]string{"result"},
)
