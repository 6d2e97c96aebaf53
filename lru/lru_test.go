package lru

import "testing"

type bytesValue int

func (b bytesValue) Len() int { return int(b) }

func TestCacheBasicLRU(t *testing.T) {
	// S1: capacity 10, add 4-byte entries a, b, c -> a evicted.
	var evicted []string
	c := New(10)
	c.OnEvicted = func(key string, value Value) { evicted = append(evicted, key) }

	c.Add("a", bytesValue(4))
	c.Add("b", bytesValue(4))
	c.Add("c", bytesValue(4))

	if len(evicted) != 1 || evicted[0] != "a" {
		t.Fatalf("expected a to be evicted, got %v", evicted)
	}
	if c.Bytes() != 8 {
		t.Fatalf("expected 8 bytes present, got %d", c.Bytes())
	}

	// get("b") makes "c" the next eviction candidate.
	if v, ok := c.Get("b"); !ok || v.(bytesValue) != 4 {
		t.Fatalf("expected b present with value 4, got %v %v", v, ok)
	}

	// add("d", 4 bytes) evicts "c".
	c.Add("d", bytesValue(4))
	if len(evicted) != 2 || evicted[1] != "c" {
		t.Fatalf("expected c to be evicted next, got %v", evicted)
	}
	if _, ok := c.Get("c"); ok {
		t.Fatalf("c should have been evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("b should still be present")
	}
	if _, ok := c.Get("d"); !ok {
		t.Fatalf("d should be present")
	}
}

func TestCacheOversizeInsert(t *testing.T) {
	// S2: capacity 5, add a 10-byte value -> cache ends empty, 0 bytes.
	c := New(5)
	c.Add("x", bytesValue(10))
	if c.Bytes() != 0 {
		t.Fatalf("expected 0 bytes after oversize insert, got %d", c.Bytes())
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after oversize insert, got %d entries", c.Len())
	}
	if _, ok := c.Get("x"); ok {
		t.Fatalf("oversize key should not be retrievable")
	}
}

func TestCacheUnboundedNeverEvicts(t *testing.T) {
	// Invariant 4: with max_bytes = 0, no key is ever evicted.
	c := New(0)
	var evicted []string
	c.OnEvicted = func(key string, value Value) { evicted = append(evicted, key) }

	for i := 0; i < 1000; i++ {
		c.Add(string(rune('a'+(i%26))), bytesValue(1<<10))
	}
	if len(evicted) != 0 {
		t.Fatalf("expected no evictions in unbounded mode, got %v", evicted)
	}
}

func TestCacheByteAccounting(t *testing.T) {
	// Invariant 1: current_bytes always equals the sum of present value lengths.
	c := New(0)
	want := int64(0)
	vals := map[string]int64{"a": 9, "b": 5, "c": 7}
	for k, v := range vals {
		c.Add(k, bytesValue(v))
	}
	for k := range vals {
		if got, ok := c.Get(k); ok {
			want += int64(got.(bytesValue))
		}
	}
	if c.Bytes() != want {
		t.Fatalf("byte accounting mismatch: cache=%d want=%d", c.Bytes(), want)
	}
}

func TestCacheUpdateReplacesValueAndAdjustsBytes(t *testing.T) {
	c := New(0)
	c.Add("k", bytesValue(4))
	c.Add("k", bytesValue(10))
	if c.Bytes() != 10 {
		t.Fatalf("expected 10 bytes after replace, got %d", c.Bytes())
	}
	v, ok := c.Get("k")
	if !ok || v.(bytesValue) != 10 {
		t.Fatalf("expected updated value 10, got %v %v", v, ok)
	}
}

func TestCacheCapacityInvariant(t *testing.T) {
	// Invariant 2: when max_bytes > 0, current_bytes <= max_bytes after every Add.
	c := New(20)
	for i := 0; i < 100; i++ {
		c.Add(string(rune('a'+(i%5))), bytesValue(7))
		if c.Bytes() > 20 {
			t.Fatalf("capacity invariant violated: %d > 20", c.Bytes())
		}
	}
}
