package ewah

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUncompressedSetGetClear(t *testing.T) {
	require := require.New(t)

	u := NewUncompressed()
	require.False(u.Get(0))
	require.False(u.Get(1000))

	u.Set(5)
	u.Set(130)
	require.True(u.Get(5))
	require.True(u.Get(130))
	require.False(u.Get(6))

	u.Clear(5)
	require.False(u.Get(5))

	// Clearing beyond the buffer grows it rather than panicking.
	u.Clear(10000)
}

func TestBitmapToUncompressedRoundTrip(t *testing.T) {
	require := require.New(t)

	b := newBitmap()
	u := b.ToUncompressed()

	for i := int64(0); i < b.n; i++ {
		require.Equal(b.Get(i), u.Get(i), "%d", i)
	}
}

func TestUncompressedToEWAHRoundTrip(t *testing.T) {
	require := require.New(t)

	u := NewUncompressed()
	for _, pos := range []int64{0, 3, 5, 130, 131, 500} {
		u.Set(pos)
	}

	n := int64(600)
	b := u.ToEWAH(n)
	require.Equal(n, b.n)

	for i := int64(0); i < n; i++ {
		require.Equal(u.Get(i), b.Get(i), "%d", i)
	}
}

func TestUncompressedToEWAHCollapsesRuns(t *testing.T) {
	require := require.New(t)

	u := NewUncompressed()
	u.Set(0)
	// words 1..100 are all zero
	u.ensure(100)
	u.Set(101 * 64)

	b := u.ToEWAH(102 * 64)
	require.True(b.Get(0))
	require.True(b.Get(101 * 64))
	require.False(b.Get(64))
	// a long run of clean words should collapse into very few markers.
	require.Less(len(b.w), 10)
}
