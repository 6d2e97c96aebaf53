// Package localstore is the reference Loader used by cmd/ocache's
// demo bootstrap: an in-memory table standing in for the external
// data source spec.md §1 treats as an out-of-scope collaborator,
// grounded on original_source/src/main.rs's HashMapDbGetter and the
// teacher's main/main.go Store map.
package localstore

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ocache/ocache"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Store is a group-partitioned in-memory table: group name -> key ->
// value. It implements ocache.Loader directly.
type Store struct {
	tables map[string]map[string]string
}

// New builds an empty Store.
func New() *Store {
	return &Store{tables: make(map[string]map[string]string)}
}

// Seed inserts key -> value into group, creating the group's table on
// first use.
func (s *Store) Seed(group, key, value string) {
	table, ok := s.tables[group]
	if !ok {
		table = make(map[string]string)
		s.tables[group] = table
	}
	table[key] = value
}

// GetData implements ocache.Loader.
func (s *Store) GetData(group, key string) (ocache.ByteView, error) {
	table, ok := s.tables[group]
	if !ok {
		return ocache.ByteView{}, fmt.Errorf("%w: %s", ocache.ErrNoSuchGroup, group)
	}
	value, ok := table[key]
	if !ok {
		return ocache.ByteView{}, fmt.Errorf("%w: %s", ocache.ErrNoSuchKey, key)
	}
	return ocache.NewByteViewFromString(value), nil
}

// RandomString returns a random alphanumeric string with length drawn
// uniformly from [min, max], grounded on
// original_source/src/main.rs's generate_random_string, used to seed
// demo datasets without shipping fixed example values.
func RandomString(min, max int) (string, error) {
	spanBig, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		return "", err
	}
	length := min + int(spanBig.Int64())

	out := make([]byte, length)
	for i := range out {
		idxBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphanumeric))))
		if err != nil {
			return "", err
		}
		out[i] = alphanumeric[idxBig.Int64()]
	}
	return string(out), nil
}
