// Package config parses the per-peer configuration described in
// spec.md §6: this peer's index within the topology, the group
// specifications it serves, the consistent-hash replica count, the
// listen port, and the total peer count.
package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Group is one "-group name=maxBytes" flag occurrence.
type Group struct {
	Name     string
	MaxBytes int64
}

// groupList implements flag.Value so -group can be repeated.
type groupList struct {
	groups *[]Group
}

func (g *groupList) String() string {
	if g.groups == nil {
		return ""
	}
	parts := make([]string, 0, len(*g.groups))
	for _, spec := range *g.groups {
		parts = append(parts, fmt.Sprintf("%s=%d", spec.Name, spec.MaxBytes))
	}
	return strings.Join(parts, ",")
}

func (g *groupList) Set(value string) error {
	name, bytesStr, ok := strings.Cut(value, "=")
	if !ok || name == "" {
		return fmt.Errorf("invalid -group value %q, want name=maxBytes", value)
	}
	maxBytes, err := strconv.ParseInt(bytesStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid -group value %q: %w", value, err)
	}
	*g.groups = append(*g.groups, Group{Name: name, MaxBytes: maxBytes})
	return nil
}

// Peer holds one peer's full bootstrap configuration.
type Peer struct {
	// Index is this peer's position within the topology, in
	// [0, TotalPeers).
	Index int

	// BasePort is the listen port of peer index 0; peer i listens on
	// BasePort+i, matching original_source/src/main.rs's base_port
	// arithmetic.
	BasePort int

	// TotalPeers is the size of the fleet.
	TotalPeers int

	// Replicas is the consistent-hash virtual-node count per peer.
	Replicas int

	// Groups lists the caches this peer serves, each with its own
	// byte budget.
	Groups []Group
}

// Parse parses args (excluding the program name, as in os.Args[1:])
// into a Peer configuration.
func Parse(args []string) (Peer, error) {
	fs := flag.NewFlagSet("ocache", flag.ContinueOnError)
	index := fs.Int("index", 0, "this peer's index within the topology")
	basePort := fs.Int("base-port", 1024, "listen port of peer index 0")
	totalPeers := fs.Int("peers", 1, "total number of peers in the fleet")
	replicas := fs.Int("replicas", 50, "consistent-hash virtual nodes per peer")

	var groups []Group
	fs.Var(&groupList{groups: &groups}, "group", "name=maxBytes, repeatable")

	if err := fs.Parse(args); err != nil {
		return Peer{}, err
	}
	if len(groups) == 0 {
		return Peer{}, fmt.Errorf("at least one -group name=maxBytes is required")
	}
	if *totalPeers < 1 {
		return Peer{}, fmt.Errorf("-peers must be >= 1")
	}
	if *index < 0 || *index >= *totalPeers {
		return Peer{}, fmt.Errorf("-index must be in [0, %d)", *totalPeers)
	}
	if *replicas < 1 {
		return Peer{}, fmt.Errorf("-replicas must be >= 1")
	}

	return Peer{
		Index:      *index,
		BasePort:   *basePort,
		TotalPeers: *totalPeers,
		Replicas:   *replicas,
		Groups:     groups,
	}, nil
}
