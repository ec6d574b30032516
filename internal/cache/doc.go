// Package cache provides the generic store behind glyphy.Cache.
//
// Cache[K, V] is a thread-safe map with a soft size limit. Lookups take a
// read lock and record their access time atomically; when an insert pushes
// the cache past its limit, the least recently used quarter is evicted.
//
//	c := cache.New[string, int](100)
//	v, created, err := c.GetOrCreate("key", func() (int, error) { return 42, nil })
//	v, ok := c.Get("key")
//
// Cache must not be copied after creation.
package cache
