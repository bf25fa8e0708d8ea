// Package pathcache memoizes executable validation verdicts with a time-to-live.
package pathcache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/gdmcp/internal/core/domain"
)

// entry is a single cached verdict.
type entry struct {
	valid    bool
	cachedAt time.Time
	ttl      time.Duration
}

// Cache implements ports.ValidationCache.
type Cache struct {
	clock      clockwork.Clock
	defaultTTL time.Duration
	mu         sync.Mutex
	entries    map[string]entry
}

// New creates a cache whose entries live for defaultTTL unless Store is given its own.
// A non-positive defaultTTL falls back to domain.DefaultCacheTTL.
func New(clock clockwork.Clock, defaultTTL time.Duration) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if defaultTTL <= 0 {
		defaultTTL = domain.DefaultCacheTTL
	}
	return &Cache{
		clock:      clock,
		defaultTTL: defaultTTL,
		entries:    make(map[string]entry),
	}
}

// Check returns the verdict for path when a live entry exists.
// An expired entry is evicted and reported as a miss.
func (c *Cache) Check(path string) (valid, fromCache bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[path]
	if !ok {
		return false, false
	}
	if c.clock.Since(e.cachedAt) >= e.ttl {
		delete(c.entries, path)
		return false, false
	}
	return e.valid, true
}

// Store records a verdict for path, replacing any previous entry.
func (c *Cache) Store(path string, valid bool, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = entry{valid: valid, cachedAt: c.clock.Now(), ttl: ttl}
}

// Evict removes the entry for path.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, path)
}
