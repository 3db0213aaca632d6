// Package lru provides the bounded in-memory page cache backed by
// hashicorp/golang-lru.
package lru

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/fwojciec/qtdoc"
)

// Ensure Cache implements qtdoc.MemoryCache at compile time.
var _ qtdoc.MemoryCache = (*Cache)(nil)

// Cache is a fixed-capacity recency cache keyed by canonical URL. Eviction
// is capacity-only; entries have no TTL.
type Cache struct {
	c *lru.Cache[string, string]
}

// New creates a Cache with the given capacity. Capacities below one are
// raised to one so the cache always holds at least the last entry.
func New(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	// lru.New only fails for a non-positive size, which is excluded above.
	c, err := lru.New[string, string](capacity)
	if err != nil {
		panic(err)
	}
	return &Cache{c: c}
}

// Get returns the cached value and promotes the key to most recently used.
func (c *Cache) Get(key string) (string, bool) {
	return c.c.Get(key)
}

// Put inserts or promotes key, evicting the least recently used entry when
// the cache is over capacity.
func (c *Cache) Put(key, value string) {
	c.c.Add(key, value)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.c.Len()
}
