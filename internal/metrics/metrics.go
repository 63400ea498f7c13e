// Package metrics exposes the application's Prometheus collectors.
// Counters are package-level and registered once at init so any number
// of handler instances can share them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scribe_posts_created_total",
		Help: "Number of posts created.",
	})

	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scribe_comments_created_total",
		Help: "Number of comments created.",
	})

	FollowsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scribe_follows_created_total",
		Help: "Number of follow edges created.",
	})

	PageCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scribe_page_cache_hits_total",
		Help: "Index page cache hits.",
	})

	PageCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scribe_page_cache_misses_total",
		Help: "Index page cache misses.",
	})

	PageCacheClears = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scribe_page_cache_clears_total",
		Help: "Explicit index page cache invalidations.",
	})
)
