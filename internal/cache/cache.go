package cache

import "sync"

// Cache is a concurrency-safe in-memory key/value store for forecast
// results. Keys combine a scope (region code or a fixed token) with the
// feed's publication baseTime, so a new publication naturally starts a
// fresh key space. Entries carry no per-key TTL: expiry happens only
// through EvictAll, driven by the scheduler.
//
// Concurrent misses for the same key are not deduplicated; two callers may
// both compute and Put the same value. That matches the upstream cadence
// (values for a given key never differ within a publication window).
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// New creates an empty Cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]V),
	}
}

// Get returns the cached value for (scope, baseTime), if any.
func (c *Cache[V]) Get(scope, baseTime string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key(scope, baseTime)]
	return v, ok
}

// Put stores a value under (scope, baseTime), replacing any previous entry.
func (c *Cache[V]) Put(scope, baseTime string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key(scope, baseTime)] = value
}

// EvictAll removes every entry regardless of key.
func (c *Cache[V]) EvictAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]V)
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func key(scope, baseTime string) string {
	return scope + "_" + baseTime
}
