/*
Copyright 2012 Google Inc.

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

package ocache

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Group is a named cache namespace: a read-through coordinator over a
// local bounded cache, an optional peer picker, and the loader that
// populates the cache on a local miss (spec.md §4.4).
type Group struct {
	name   string
	loader Loader
	cache  *cache

	mu     sync.RWMutex // guards picker only; the cache has its own lock
	picker PeerPicker

	log logrus.FieldLogger
}

// newGroup constructs a Group. It is unexported: groups are only ever
// created through a Registry, which owns the name -> Group mapping.
func newGroup(name string, maxBytes int64, loader Loader, log logrus.FieldLogger) *Group {
	if loader == nil {
		panic("ocache: nil Loader")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Group{
		name:   name,
		loader: loader,
		cache:  newCache(maxBytes),
		log:    log.WithField("group", name),
	}
}

// Name returns the group's name.
func (g *Group) Name() string { return g.name }

// RegisterPeer sets or replaces the group's peer picker. Safe to call
// once at startup; the core does not require later replacement but
// does not forbid it either (spec.md §4.4).
func (g *Group) RegisterPeer(picker PeerPicker) {
	g.mu.Lock()
	g.picker = picker
	g.mu.Unlock()
	g.log.Info("peer picker registered")
}

func (g *Group) peerPicker() PeerPicker {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.picker
}

// Get resolves key: cache hit returns immediately; otherwise, if a
// picker is registered and names a remote owner, the request is
// forwarded and the result returned verbatim (never cached locally —
// the owning peer is the sole authority for its keys); otherwise the
// value is loaded locally and installed into the cache before being
// returned.
func (g *Group) Get(key string) (ByteView, error) {
	if key == "" {
		return ByteView{}, ErrEmptyKey
	}

	if v, ok := g.cache.get(key); ok {
		g.log.Debugf("cache hit for key %q", key)
		return v, nil
	}
	g.log.Debugf("cache miss for key %q", key)

	if picker := g.peerPicker(); picker != nil {
		if peer, ok := picker.PickPeer(key); ok {
			g.log.Debugf("forwarding key %q to remote peer", key)
			v, err := peer.GetFromRemote(g.name, key)
			if err != nil {
				g.log.Warnf("remote fetch for key %q failed: %v", key, err)
			}
			return v, err
		}
	}

	return g.getLocally(key)
}

func (g *Group) getLocally(key string) (ByteView, error) {
	v, err := g.loader.GetData(g.name, key)
	if err != nil {
		g.log.Errorf("loader failed for key %q: %v", key, err)
		return ByteView{}, err
	}
	// v is installed into the cache and returned to the caller as the
	// same immutable ByteView: its contents never change after
	// construction, so sharing it satisfies spec.md §9's requirement
	// that the two never be *mutably* aliased.
	g.cache.add(key, v)
	return v, nil
}

// CacheStats reports the group's local cache statistics.
func (g *Group) CacheStats() CacheStats {
	return g.cache.stats()
}
