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

// PeerClient is the capability a remote peer exposes: fetch a value
// the caller believes that peer owns, and report whether the peer is
// currently reachable. Any transport implementing these two
// operations is an acceptable peer — the group never depends on HTTP
// specifically.
type PeerClient interface {
	// GetFromRemote fetches (group, key) from the peer that owns it.
	GetFromRemote(group, key string) (ByteView, error)

	// IsActive reports whether the peer currently looks reachable.
	// The core does not act on this itself (no health-based routing,
	// no retries); it exists so a caller-supplied PeerPicker can.
	IsActive() bool
}

// PeerPicker locates the peer that owns a key. Implementations must
// be safe for concurrent use without external locking; PickerRing,
// this package's consistent-hash implementation, satisfies that by
// being immutable after construction.
type PeerPicker interface {
	// PickPeer returns the client for the peer that owns key, and
	// true. If the local peer owns key, it returns nil, false —
	// callers must load locally rather than treat this as an error.
	PickPeer(key string) (peer PeerClient, ok bool)
}

// PeerEntry is one row of the peer topology supplied at startup: a
// base URL and the client used to reach it, or a nil client for the
// local peer (the loopback shortcut described in spec.md §3).
type PeerEntry struct {
	BaseURL string
	Client  PeerClient
}
