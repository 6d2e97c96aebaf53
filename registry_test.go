package ocache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryNoSuchGroup(t *testing.T) {
	// S4: registry.Get("Unknown", "k") returns "No such group: Unknown".
	loader := LoaderFunc(func(group, key string) (ByteView, error) {
		return NewByteViewFromString("x"), nil
	})
	r := NewRegistry([]GroupSpec{{Name: "Scores", MaxBytes: 1 << 10}}, loader, nil)

	_, err := r.Get("Unknown", "k")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNoSuchGroup)
	require.Contains(t, err.Error(), "No such group: Unknown")
}

func TestRegistryRegisterPeerForGroupUnknown(t *testing.T) {
	loader := LoaderFunc(func(group, key string) (ByteView, error) {
		return ByteView{}, nil
	})
	r := NewRegistry([]GroupSpec{{Name: "Scores", MaxBytes: 1 << 10}}, loader, nil)

	err := r.RegisterPeerForGroup(fixedPicker{ok: false}, "Unknown")
	require.ErrorIs(t, err, ErrNoSuchGroup)
}

func TestRegistryDispatchesToNamedGroup(t *testing.T) {
	calls := map[string]int{}
	loader := LoaderFunc(func(group, key string) (ByteView, error) {
		calls[group]++
		return NewByteViewFromString(group + ":" + key), nil
	})
	r := NewRegistry([]GroupSpec{
		{Name: "Scores", MaxBytes: 1 << 10},
		{Name: "Labs", MaxBytes: 1 << 10},
	}, loader, nil)

	v, err := r.Get("Scores", "k1")
	require.NoError(t, err)
	require.Equal(t, "Scores:k1", v.String())

	v, err = r.Get("Labs", "k1")
	require.NoError(t, err)
	require.Equal(t, "Labs:k1", v.String())

	require.Equal(t, 1, calls["Scores"])
	require.Equal(t, 1, calls["Labs"])
}

func TestRegistryStatsReflectsGets(t *testing.T) {
	loader := LoaderFunc(func(group, key string) (ByteView, error) {
		return NewByteViewFromString("value"), nil
	})
	r := NewRegistry([]GroupSpec{{Name: "Scores", MaxBytes: 1 << 10}}, loader, nil)

	_, err := r.Get("Scores", "k1")
	require.NoError(t, err)
	_, err = r.Get("Scores", "k1")
	require.NoError(t, err)

	stats := r.Stats()
	require.Contains(t, stats, "Scores")
	require.EqualValues(t, 2, stats["Scores"].Gets)
	require.EqualValues(t, 1, stats["Scores"].Hits)
	require.EqualValues(t, 1, stats["Scores"].Items)
	require.EqualValues(t, int64(len("value")), stats["Scores"].Bytes)
}
