package ocache

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// GroupSpec is one configured group: its name and its cache's byte
// capacity (0 disables eviction for that group).
type GroupSpec struct {
	Name     string
	MaxBytes int64
}

// Registry multiplexes Get/RegisterPeer calls across a fixed set of
// named groups (spec.md §4.5). Membership is fully populated at
// construction and immutable thereafter; only the per-group state
// mutates afterwards, under each Group's own locking.
type Registry struct {
	mu     sync.RWMutex
	groups map[string]*Group
}

// NewRegistry constructs one Group per spec, all sharing loader, and
// returns the populated Registry. log may be nil, in which case the
// standard logrus logger is used.
func NewRegistry(specs []GroupSpec, loader Loader, log logrus.FieldLogger) *Registry {
	groups := make(map[string]*Group, len(specs))
	for _, spec := range specs {
		groups[spec.Name] = newGroup(spec.Name, spec.MaxBytes, loader, log)
	}
	return &Registry{groups: groups}
}

// Get looks up group by name and delegates to its Get(key). The
// registry lock is held only long enough to retrieve the *Group
// pointer — not across the group call itself — since the group
// carries its own internal synchronization (spec.md §9, "Concurrency
// reconsiderations (i)"). Unknown group names produce ErrNoSuchGroup.
func (r *Registry) Get(group, key string) (ByteView, error) {
	g, err := r.lookup(group)
	if err != nil {
		return ByteView{}, err
	}
	return g.Get(key)
}

// RegisterPeerForGroup sets picker as the named group's peer picker.
// Unknown group names produce ErrNoSuchGroup.
func (r *Registry) RegisterPeerForGroup(picker PeerPicker, group string) error {
	g, err := r.lookup(group)
	if err != nil {
		return err
	}
	g.RegisterPeer(picker)
	return nil
}

// RegisterPeerForAll registers picker with every configured group, the
// common case at startup where one ring serves every group.
func (r *Registry) RegisterPeerForAll(picker PeerPicker) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.groups {
		g.RegisterPeer(picker)
	}
}

// Stats reports each configured group's cache statistics, keyed by
// group name. Used by cmd/ocache to log cache occupancy on shutdown.
func (r *Registry) Stats() map[string]CacheStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]CacheStats, len(r.groups))
	for name, g := range r.groups {
		out[name] = g.CacheStats()
	}
	return out
}

func (r *Registry) lookup(group string) (*Group, error) {
	r.mu.RLock()
	g, ok := r.groups[group]
	r.mu.RUnlock()
	if !ok {
		return nil, errNoSuchGroup(group)
	}
	return g, nil
}
