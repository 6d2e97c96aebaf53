package ocache

import (
	"sync"
	"sync/atomic"

	"github.com/ocache/ocache/lru"
)

// cache wraps an *lru.Cache with mutual exclusion. get and add each
// hold the lock for the full duration of the underlying LRU
// operation: get is not read-only here, since an LRU hit mutates
// recency order, so there is no read/write distinction to exploit.
// Callers must never walk LRU internals outside of this lock.
type cache struct {
	mu       sync.Mutex
	lru      *lru.Cache
	maxBytes int64

	nhit, nget int64
	nevict     int64
}

func newCache(maxBytes int64) *cache {
	return &cache{maxBytes: maxBytes}
}

func (c *cache) get(key string) (value ByteView, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	atomic.AddInt64(&c.nget, 1)
	if c.lru == nil {
		return
	}
	v, hit := c.lru.Get(key)
	if !hit {
		return
	}
	atomic.AddInt64(&c.nhit, 1)
	return v.(ByteView), true
}

func (c *cache) add(key string, value ByteView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru == nil {
		c.lru = lru.New(c.maxBytes)
		c.lru.OnEvicted = func(key string, value lru.Value) {
			atomic.AddInt64(&c.nevict, 1)
		}
	}
	c.lru.Add(key, value)
}

// CacheStats are returned by Group.CacheStats for observability.
type CacheStats struct {
	Bytes     int64
	Items     int64
	Gets      int64
	Hits      int64
	Evictions int64
}

func (c *cache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	var items int64
	if c.lru != nil {
		items = int64(c.lru.Len())
	}
	var bytes int64
	if c.lru != nil {
		bytes = c.lru.Bytes()
	}
	return CacheStats{
		Bytes:     bytes,
		Items:     items,
		Gets:      atomic.LoadInt64(&c.nget),
		Hits:      atomic.LoadInt64(&c.nhit),
		Evictions: atomic.LoadInt64(&c.nevict),
	}
}
