package ocache

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the domain error kinds from spec.md §7.
// Their Error() text still carries the substring contracts ("No such")
// that the HTTP boundary pattern-matches on; errors.Is/As work against
// these in addition to the substring check.
var (
	// ErrEmptyKey is returned by Group.Get when called with "".
	ErrEmptyKey = errors.New("key is empty")

	// ErrNoSuchGroup is wrapped with the group name by the registry
	// when asked for a group that was never configured.
	ErrNoSuchGroup = errors.New("No such group")

	// ErrNoSuchKey is wrapped with the key by loaders that know their
	// keyspace is exhausted (the reference in-memory loader does this).
	ErrNoSuchKey = errors.New("No such key")
)

func errNoSuchGroup(name string) error {
	return fmt.Errorf("%w: %s", ErrNoSuchGroup, name)
}

func errNoSuchKey(key string) error {
	return fmt.Errorf("%w: %s", ErrNoSuchKey, key)
}
