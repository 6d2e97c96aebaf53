package ocache

import "testing"

func TestPickerRingLocalShortcut(t *testing.T) {
	// A single-peer topology always returns absent, since the sole
	// peer's null-client entry wins every shard (spec.md §4.3 edge
	// case).
	ring := NewPickerRing(nil, 16, []PeerEntry{{BaseURL: "http://127.0.0.1:1024", Client: nil}})

	for _, k := range []string{"a", "b", "mxy"} {
		if _, ok := ring.PickPeer(k); ok {
			t.Fatalf("expected local shortcut for key %q in single-peer topology", k)
		}
	}
}

func TestPickerRingForwardsToRemote(t *testing.T) {
	remote := &fakePeerClient{value: NewByteViewFromString("v")}
	peers := []PeerEntry{
		{BaseURL: "http://127.0.0.1:1024", Client: nil},
		{BaseURL: "http://127.0.0.1:1025", Client: remote},
	}
	ring := NewPickerRing(nil, 16, peers)

	sawLocal, sawRemote := false, false
	for _, k := range []string{"mxy", "oldust", "rust", "c++", "a", "b", "c", "d", "e"} {
		client, ok := ring.PickPeer(k)
		if !ok {
			sawLocal = true
			continue
		}
		if client != remote {
			t.Fatalf("expected the configured remote client for key %q", k)
		}
		sawRemote = true
	}
	if !sawLocal || !sawRemote {
		t.Fatalf("expected keys to be distributed across both peers (local=%v remote=%v)", sawLocal, sawRemote)
	}
}

func TestPickerRingRequiresNonEmptyTopology(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty peer topology")
		}
	}()
	NewPickerRing(nil, 16, nil)
}
