package resolve

import (
	"sync"

	"github.com/zeebo/xxh3"
)

// Cache is an optional, caller-owned store of resolution results keyed
// by (consumer, profile). The engine itself never caches: whether and
// how long results live across runs is a caller decision, and so is
// invalidation.
//
// Keying by the full (consumer, profile) pair means a result resolved
// for one profile can never satisfy a lookup for another. Callers that
// run unprefixed exports for different profiles in sequence and keep any
// name-keyed store of their own must invalidate it between runs; this
// type exists so they do not have to.
//
// Cache is safe for concurrent use.
type Cache struct {
	entries sync.Map // uint64 → *Result
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// cacheKey hashes the (consumer, profile) pair. The NUL separator keeps
// ("ab","c") and ("a","bc") distinct.
func cacheKey(consumer, profile string) uint64 {
	return xxh3.HashString(consumer + "\x00" + profile)
}

// Put stores a result under its (consumer, profile) pair.
func (c *Cache) Put(res *Result) {
	c.entries.Store(cacheKey(res.Consumer, res.Profile), res)
}

// Get returns the cached result for the (consumer, profile) pair, if
// one is stored.
func (c *Cache) Get(consumer, profile string) (*Result, bool) {
	v, ok := c.entries.Load(cacheKey(consumer, profile))
	if !ok {
		return nil, false
	}

	return v.(*Result), true
}

// Invalidate removes the entry for one (consumer, profile) pair.
func (c *Cache) Invalidate(consumer, profile string) {
	c.entries.Delete(cacheKey(consumer, profile))
}

// Purge removes every entry.
func (c *Cache) Purge() {
	c.entries.Clear()
}
