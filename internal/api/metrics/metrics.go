// Package metrics defines and registers all custom Prometheus metrics for
// the community board API. It is the single source of truth for metric
// names, labels, and help strings. Registration with the default registry
// happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "board"

// MembersRegisteredTotal counts successful member registrations.
var MembersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_registered_total",
		Help:      "Total number of members successfully registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts successfully created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// FeedCacheTotal counts post feed cache decisions.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fell through to Mongo)
var FeedCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_cache_total",
		Help:      "Total number of post feed cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
