/*
Copyright 2013 Google Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package lru implements a byte-size-bounded LRU cache keyed by
// string, used by a single owning group to hold the values it is
// authoritative for.
package lru

import "container/list"

// Value is anything that can report how many bytes it costs to hold
// in the cache. Eviction accounting is done purely in terms of this
// cost; key bytes are not counted.
type Value interface {
	Len() int
}

// Cache is an LRU cache keyed by string. It is not safe for
// concurrent access — callers needing that must add their own
// locking (see the cache wrapper in the ocache package).
type Cache struct {
	// MaxBytes is the maximum sum of value lengths the cache
	// will hold before it starts evicting. Zero means no limit:
	// eviction never happens.
	MaxBytes int64

	// OnEvicted optionally specifies a callback run when an
	// entry is purged, whether by explicit eviction or because
	// the entry itself was too large to ever fit.
	OnEvicted func(key string, value Value)

	nbytes int64 // sum of all current value.Len()
	ll     *list.List
	cache  map[string]*list.Element
}

type entry struct {
	key   string
	value Value
}

// New creates a new Cache with the given byte capacity. A capacity of
// zero means unbounded.
func New(maxBytes int64) *Cache {
	return &Cache{
		MaxBytes: maxBytes,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
	}
}

// Add inserts or updates key with value, moving it to the active end
// of the list. If the key already exists, its prior value is replaced
// and the byte count adjusted by the difference in length, rather
// than double-counted. Eviction from the stale end then runs until
// the cache is back within MaxBytes (it never runs if MaxBytes is 0).
func (c *Cache) Add(key string, value Value) {
	if c.cache == nil {
		c.cache = make(map[string]*list.Element)
		c.ll = list.New()
	}
	if ee, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ee)
		old := ee.Value.(*entry)
		c.nbytes += int64(value.Len()) - int64(old.value.Len())
		old.value = value
	} else {
		ele := c.ll.PushFront(&entry{key, value})
		c.cache[key] = ele
		c.nbytes += int64(value.Len())
	}
	for c.MaxBytes > 0 && c.nbytes > c.MaxBytes {
		c.removeOldest()
	}
}

// Get looks up key's value, promoting it to the active end on a hit.
func (c *Cache) Get(key string) (value Value, ok bool) {
	if c.cache == nil {
		return
	}
	if ele, hit := c.cache[key]; hit {
		c.ll.MoveToFront(ele)
		return ele.Value.(*entry).value, true
	}
	return
}

func (c *Cache) removeOldest() {
	ele := c.ll.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *Cache) removeElement(e *list.Element) {
	c.ll.Remove(e)
	kv := e.Value.(*entry)
	delete(c.cache, kv.key)
	c.nbytes -= int64(kv.value.Len())
	if c.OnEvicted != nil {
		c.OnEvicted(kv.key, kv.value)
	}
}

// Len returns the number of items currently held.
func (c *Cache) Len() int {
	if c.cache == nil {
		return 0
	}
	return c.ll.Len()
}

// Bytes returns the current sum of value lengths (invariant I1).
func (c *Cache) Bytes() int64 {
	return c.nbytes
}
