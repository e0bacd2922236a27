package hashing

import "sync/atomic"

type cacheKey struct {
	hash  uint64
	depth int
}

// PerftCache remembers leaf counts per (position, depth). Lookups and
// counters are cheap, but the map itself is not safe for concurrent writes;
// use ThreadSafePerftCache across goroutines.
type PerftCache struct {
	entries map[cacheKey]uint64
	// maxCapacity limits the number of entries (0 = unlimited)
	maxCapacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPerftCache creates a cache. maxCapacity of 0 means unlimited.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached node count for a position key at depth.
func (c *PerftCache) Get(hash uint64, depth int) (uint64, bool) {
	nodes, ok := c.entries[cacheKey{hash, depth}]
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return nodes, ok
}

// Put stores a node count. Once the cache is full new entries are dropped;
// existing ones are never evicted.
func (c *PerftCache) Put(hash uint64, depth int, nodes uint64) {
	key := cacheKey{hash, depth}
	if _, ok := c.entries[key]; !ok && c.IsFull() {
		return
	}
	c.entries[key] = nodes
}

// Len returns the number of cached entries.
func (c *PerftCache) Len() int {
	return len(c.entries)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Stats returns the hit and miss counts since creation.
func (c *PerftCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
