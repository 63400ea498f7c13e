// Package cache holds the rendered-page cache. It is an explicit keyed
// store with a TTL and an invalidation hook rather than implicit
// framework caching: within the TTL the stored bytes are returned
// as-is even if the underlying data changed.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// PageCache memoizes rendered response bodies per route key.
type PageCache struct {
	ttl   time.Duration
	store *gocache.Cache
}

// NewPageCache creates a cache whose entries expire after ttl.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		ttl:   ttl,
		store: gocache.New(ttl, time.Minute),
	}
}

// Get returns the cached bytes for key, if present and unexpired.
func (p *PageCache) Get(key string) ([]byte, bool) {
	v, ok := p.store.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Set stores body under key for the cache's TTL. The body is copied so
// later writes by the caller cannot mutate the cached entry.
func (p *PageCache) Set(key string, body []byte) {
	buf := make([]byte, len(body))
	copy(buf, body)
	p.store.Set(key, buf, p.ttl)
}

// Delete drops a single entry.
func (p *PageCache) Delete(key string) {
	p.store.Delete(key)
}

// Clear drops every entry immediately. This is the explicit
// administrative invalidation hook.
func (p *PageCache) Clear() {
	p.store.Flush()
}
