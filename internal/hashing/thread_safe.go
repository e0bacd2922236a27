package hashing

import "sync"

// ThreadSafePerftCache wraps PerftCache with mutex protection for concurrent access.
type ThreadSafePerftCache struct {
	cache *PerftCache
	mu    sync.RWMutex
}

// NewThreadSafePerftCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftCache(maxCapacity int) *ThreadSafePerftCache {
	return &ThreadSafePerftCache{
		cache: NewPerftCache(maxCapacity),
	}
}

// Get returns the cached node count for a position key at depth.
func (c *ThreadSafePerftCache) Get(hash uint64, depth int) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Get(hash, depth)
}

// Put stores a node count.
func (c *ThreadSafePerftCache) Put(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Put(hash, depth, nodes)
}

// Len returns the number of cached entries.
func (c *ThreadSafePerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafePerftCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.IsFull()
}

// Stats returns the hit and miss counts.
func (c *ThreadSafePerftCache) Stats() (hits, misses uint64) {
	return c.cache.Stats()
}
