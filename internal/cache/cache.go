// Package cache provides the short-lived in-memory response cache shared by
// every feed operation. Expiry is lazy: entries are dropped on the first
// lookup after their TTL elapses, never by a background sweeper.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL matches the five-minute response cache the service has always
// used.
const DefaultTTL = 5 * time.Minute

type entry struct {
	data     any
	storedAt time.Time
}

// Cache is a thread-safe key→value store with time-boxed entries. There is
// no capacity bound; keys are few (one per operation+parameters) and values
// expire quickly.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New constructs a cache with the given TTL. A non-positive TTL falls back
// to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the stored value when it is still fresh. An expired entry is
// removed on this lookup and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.data, true
}

// Set stores a value, stamping it with the current time. Concurrent writers
// for the same key race benignly: last write wins and cached values are
// idempotent snapshots.
func (c *Cache) Set(key string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, storedAt: c.now()}
}

// Len reports how many entries are currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SetClock overrides the time source; intended for tests.
func (c *Cache) SetClock(now func() time.Time) {
	if now == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
