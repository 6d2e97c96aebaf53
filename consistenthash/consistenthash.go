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

// Package consistenthash provides an implementation of a ring hash:
// a sorted set of virtual-node hashes mapping back to a small set of
// real owners, used so that adding or removing an owner only reshuffles
// the keys adjacent to it on the ring.
package consistenthash

import (
	"fmt"
	"hash/crc32"
	"sort"
)

// Hash computes an unsigned integer from the UTF-8 bytes of data.
type Hash func(data []byte) uint32

// Map is a ring of virtual-node hashes, each mapping back to the real
// owner name that placed it. Once built, a Map is immutable and safe
// for concurrent reads without locking.
type Map struct {
	hash     Hash
	replicas int
	keys     []uint32          // sorted virtual-node hashes
	hashMap  map[uint32]string // virtual-node hash -> owner name
}

// New creates an empty ring. fn defaults to crc32.ChecksumIEEE, the
// reference deployment's hash function, when nil.
func New(replicas int, fn Hash) *Map {
	m := &Map{
		replicas: replicas,
		hash:     fn,
		hashMap:  make(map[uint32]string),
	}
	if m.hash == nil {
		m.hash = crc32.ChecksumIEEE
	}
	return m
}

// IsEmpty reports whether the ring has no owners.
func (m *Map) IsEmpty() bool {
	return len(m.keys) == 0
}

// Add places replicas virtual nodes for each owner on the ring, under
// the label "<owner> <replica index>" (single ASCII space). Virtual
// nodes that hash to the same bucket across different owners resolve
// by last-writer-wins in hashMap; duplicate entries in keys are left
// as-is rather than deduplicated, per the ring's documented tradeoff.
func (m *Map) Add(owners ...string) {
	for _, owner := range owners {
		for i := 0; i < m.replicas; i++ {
			label := fmt.Sprintf("%s %d", owner, i)
			hash := m.hash([]byte(label))
			m.keys = append(m.keys, hash)
			m.hashMap[hash] = owner
		}
	}
	sort.Slice(m.keys, func(i, j int) bool { return m.keys[i] < m.keys[j] })
}

// Get returns the owner whose virtual node is the ring successor of
// key: the smallest hash greater than or equal to hash(key), wrapping
// around to the first node if key's hash is larger than all of them.
// Get never fails for a non-empty ring.
func (m *Map) Get(key string) string {
	if m.IsEmpty() {
		return ""
	}
	hash := m.hash([]byte(key))

	idx := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= hash })
	if idx == len(m.keys) {
		idx = 0
	}
	return m.hashMap[m.keys[idx]]
}
