package ocache

import (
	"github.com/ocache/ocache/consistenthash"
)

// Hash computes an unsigned integer from a string key. The reference
// deployment uses CRC-32 over the key's UTF-8 bytes (see NewPickerRing).
type Hash func(key string) uint32

// PickerRing is the consistent-hash PeerPicker described in spec.md
// §4.3: it places each peer's base URL on a ring under Replicas
// virtual nodes and answers PickPeer by finding the ring successor of
// H(key). It is built once from a fixed peer topology and is
// immutable thereafter, so it needs no locking to be read
// concurrently.
type PickerRing struct {
	ring    *consistenthash.Map
	clients map[string]PeerClient // base URL -> client, nil for the local peer
}

// NewPickerRing builds a ring from peers. hash defaults to CRC-32 over
// the UTF-8 bytes of the input when nil. replicas must be >= 1.
// peers must be non-empty and contain exactly one entry with a nil
// Client (the local peer) — construction does not itself enforce the
// "exactly one" part since a picker for a single-peer topology with no
// local entry is also well-defined (every lookup then forwards).
func NewPickerRing(hash Hash, replicas int, peers []PeerEntry) *PickerRing {
	if len(peers) == 0 {
		panic("ocache: NewPickerRing requires a non-empty peer topology")
	}
	var chash consistenthash.Hash
	if hash != nil {
		chash = func(data []byte) uint32 { return hash(string(data)) }
	}
	ring := consistenthash.New(replicas, chash)
	clients := make(map[string]PeerClient, len(peers))
	urls := make([]string, 0, len(peers))
	for _, p := range peers {
		urls = append(urls, p.BaseURL)
		clients[p.BaseURL] = p.Client
	}
	ring.Add(urls...)
	return &PickerRing{ring: ring, clients: clients}
}

// PickPeer implements PeerPicker. A nil client for the winning owner
// means the local peer won the shard: PickPeer then returns nil,
// false, signaling the caller to load locally rather than forward.
func (p *PickerRing) PickPeer(key string) (PeerClient, bool) {
	owner := p.ring.Get(key)
	client := p.clients[owner]
	if client == nil {
		return nil, false
	}
	return client, true
}
