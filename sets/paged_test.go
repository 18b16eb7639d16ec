package sets

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		key    int32
		id     int32
		offset uint16
	}{
		{0, 0, 0},
		{0xFFFF, 0, 0xFFFF},
		{0x10000, 1, 0},
		{0x12345678, 0x1234, 0x5678},
		{-1, -1, 0xFFFF},
		{math.MinInt32, -0x8000, 0},
		{math.MaxInt32, 0x7FFF, 0xFFFF},
	} {
		id, offset := split(tc.key)
		assert.Equal(t, tc.id, id, "page of %d", tc.key)
		assert.Equal(t, tc.offset, offset, "offset of %d", tc.key)
		assert.Equal(t, tc.key, id<<pageBits|int32(offset), "key %d should round trip", tc.key)
	}
}

func TestPagedPagesLifecycle(t *testing.T) {
	s := NewPagedIntSet()
	assert.Equal(t, 0, s.Pages())

	require.True(t, s.Add(1))
	require.True(t, s.Add(2))
	require.True(t, s.Add(0x10001))
	require.True(t, s.Add(-5))
	assert.Equal(t, 3, s.Pages())
	assert.Equal(t, 4, s.Size())

	assert.False(t, s.Remove(0x20000), "key in a missing page")
	assert.False(t, s.Remove(3), "key missing from an existing page")
	assert.Equal(t, 3, s.Pages())

	require.True(t, s.Remove(0x10001))
	assert.Equal(t, 2, s.Pages(), "empty page should be dropped")
	require.True(t, s.Remove(1))
	assert.Equal(t, 2, s.Pages(), "page still holds 2")
	require.True(t, s.Remove(2))
	require.True(t, s.Remove(-5))
	assert.Equal(t, 0, s.Pages())
	assert.True(t, s.Empty())
	assert.False(t, s.Contains(1))
}

func TestPagedSparseKeys(t *testing.T) {
	s := NewPagedIntSet()
	var keys []int32
	for i := int32(-100); i < 100; i++ {
		keys = append(keys, i*0x10000+i)
	}
	for _, k := range keys {
		require.True(t, s.Add(k))
	}
	assert.Equal(t, len(keys), s.Size())
	assert.Equal(t, len(keys), s.Pages())
	for _, k := range keys {
		assert.True(t, s.Contains(k), "%d", k)
		assert.False(t, s.Contains(k+1), "%d", k+1)
	}
	assert.ElementsMatch(t, keys, s.Values())
}

func TestPagedIteratorSpansPages(t *testing.T) {
	s := NewPagedIntSet()
	want := []int32{math.MinInt32, -65536, -1, 0, 65535, 65536, math.MaxInt32}
	for _, k := range want {
		require.True(t, s.Add(k))
	}

	var got []int32
	it := s.Iterator()
	for it.HasNext() {
		assert.True(t, it.HasNext(), "HasNext should not consume")
		v, err := it.Next()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.ElementsMatch(t, want, got)
	_, err := it.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestPagedIteratorFullPage(t *testing.T) {
	s := NewPagedIntSet()
	base := int32(3 << pageBits)
	for i := int32(0); i < pageSize; i++ {
		require.True(t, s.Add(base+i))
	}
	require.True(t, s.Add(42))
	assert.Equal(t, pageSize+1, s.Size())

	seen := make(map[int32]bool)
	for v := range s.All() {
		assert.False(t, seen[v], "%d repeated", v)
		seen[v] = true
	}
	assert.Len(t, seen, pageSize+1)
	assert.True(t, seen[base+0xFFFF], "the marker offset of a full page should be yielded")
	assert.True(t, seen[42])
}

func TestPagedMemoryUsage(t *testing.T) {
	s := NewPagedIntSet()
	empty := s.MemoryUsage()
	s.Add(1)
	one := s.MemoryUsage()
	assert.Greater(t, one, empty)

	for i := int32(0); i < 1000; i++ {
		s.Add(i)
	}
	assert.Greater(t, s.MemoryUsage(), one)
	// 1000 offsets fit in well under 4 KiB of 16-bit slots.
	assert.Less(t, s.MemoryUsage(), int64(4096))

	for i := int32(0); i < 1000; i++ {
		s.Remove(i)
	}
	assert.Equal(t, empty, s.MemoryUsage(), "dropping the page should release its estimate")
}
