// Package cache provides a small generic TTL cache for computed views.
package cache

import (
	"sync"
	"time"
)

// TTL is a map-backed cache whose entries expire after a fixed duration.
// The dashboard keyspace is tiny (one entry per period selector), so there
// is no size-based eviction.
type TTL[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[T]
}

type entry[T any] struct {
	data      T
	expiresAt time.Time
}

func NewTTL[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{ttl: ttl, entries: make(map[string]entry[T])}
}

// Get returns the cached value if present and unexpired.
func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return zero, false
	}
	return e.data, true
}

// Put stores a value under key with a fresh TTL.
func (c *TTL[T]) Put(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{data: data, expiresAt: time.Now().Add(c.ttl)}
}

// Invalidate drops every entry. Called after any repository mutation so
// stale aggregates are never served.
func (c *TTL[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}

// Len returns the number of cached entries, expired or not.
func (c *TTL[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
