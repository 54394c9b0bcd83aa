package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warpmint/framepay/pkg/cache"
)

func TestGetMissAndHit(t *testing.T) {
	c, err := cache.New[int64, string](4)
	require.NoError(t, err)

	_, ok := c.Get(1)
	require.False(t, ok)

	c.Add(1, "alice")
	got, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "alice", got)
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	c, err := cache.New[int64, string](2)
	require.NoError(t, err)

	c.Add(1, "alice")
	c.Add(2, "bob")

	// Touch 1 so 2 becomes the eviction candidate.
	_, ok := c.Get(1)
	require.True(t, ok)

	c.Add(3, "carol")
	require.Equal(t, 2, c.Len())

	_, ok = c.Get(2)
	require.False(t, ok)
	_, ok = c.Get(1)
	require.True(t, ok)
	_, ok = c.Get(3)
	require.True(t, ok)
}

func TestZeroCapacityRejected(t *testing.T) {
	_, err := cache.New[int64, string](0)
	require.Error(t, err)
}
