package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryReportCache is a process-local report cache. Suitable for
// single-instance deployments and tests; entries are not shared across
// processes.
type InMemoryReportCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
}

type inMemoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewInMemoryReportCache creates an empty in-memory report cache
func NewInMemoryReportCache() *InMemoryReportCache {
	return &InMemoryReportCache{entries: make(map[string]inMemoryEntry)}
}

// Get returns the cached value when present and not expired
func (c *InMemoryReportCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		if ok {
			c.Delete(context.Background(), key)
		}
		return nil, false
	}
	return entry.value, true
}

// Set stores a value with the given TTL
func (c *InMemoryReportCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = inMemoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Delete removes a key
func (c *InMemoryReportCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
