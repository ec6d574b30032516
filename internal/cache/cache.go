package cache

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
)

// Cache is a generic thread-safe cache with a soft limit.
// When the cache exceeds softLimit, the oldest entries are evicted.
type Cache[K comparable, V any] struct {
	mu        sync.RWMutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      atomic.Int64 // Monotonic access counter
}

type cacheEntry[V any] struct {
	value V
	atime atomic.Int64
}

// New creates a cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: max(softLimit, 0),
	}
}

// Get retrieves a value from the cache.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	entry.atime.Store(c.tick.Add(1))
	return entry.value, true
}

// GetOrCreate returns the cached value for key or stores the result of
// create. create runs under the write lock, after a second lookup, so
// concurrent callers for one key create it once. A create error is
// returned as is and nothing is stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (value V, created bool, err error) {
	if v, ok := c.Get(key); ok {
		return v, false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.atime.Store(c.tick.Add(1))
		return entry.value, false, nil
	}
	value, err = create()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.store(key, value)
	return value, true, nil
}

// Delete removes an entry and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		return true
	}
	return false
}

// DeleteFunc removes every entry whose key satisfies del and returns the
// number removed.
func (c *Cache[K, V]) DeleteFunc(del func(K) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k := range c.entries {
		if del(k) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Capacity returns the soft limit.
func (c *Cache[K, V]) Capacity() int {
	return c.softLimit
}

// store inserts value and evicts if over the limit. Caller must hold c.mu
// for writing.
func (c *Cache[K, V]) store(key K, value V) {
	entry := &cacheEntry[V]{value: value}
	entry.atime.Store(c.tick.Add(1))
	c.entries[key] = entry

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest removes the least recently used entries until a quarter of
// the limit is free. Caller must hold c.mu for writing.
func (c *Cache[K, V]) evictOldest() {
	targetSize := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		all = append(all, aged{key: key, atime: e.atime.Load()})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.atime, b.atime) })
	for _, e := range all[:toEvict] {
		delete(c.entries, e.key)
	}
}
