package sets

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
)

// fullPage returns a page holding every offset except skip, then skip last.
func fullPage(t *testing.T, skip uint16) *page {
	t.Helper()
	p := newPage(minCapacity, zap.NewNop())
	for i := 0; i < pageSize; i++ {
		if uint16(i) != skip {
			require.True(t, p.add(uint16(i)))
		}
	}
	require.Equal(t, pageSize-1, p.size)
	require.False(t, p.saturated())
	require.True(t, p.add(skip))
	return p
}

func walkPage(p *page) []uint16 {
	var got []uint16
	for v, i, ok := p.scan(0); ok; v, i, ok = p.scan(i) {
		got = append(got, v)
	}
	return got
}

func TestPageSaturation(t *testing.T) {
	p := fullPage(t, pageSentinel)
	assert.True(t, p.saturated())
	assert.Equal(t, pageSize, p.size)

	for _, v := range []uint16{0, 1, 0x7FFF, 0xFFFE, 0xFFFF} {
		assert.True(t, p.contains(v), "%d should be present", v)
		assert.False(t, p.add(v), "%d should be rejected by a full page", v)
	}
	assert.Equal(t, pageSize, p.size)

	got := walkPage(p)
	assert.Len(t, got, pageSize, "a full page should yield every offset")
	seen := make(map[uint16]bool, len(got))
	for _, v := range got {
		seen[v] = true
	}
	assert.Len(t, seen, pageSize, "no offset should repeat")
}

func TestPageLeaveSaturation(t *testing.T) {
	for _, removed := range []uint16{0, 1234, 0xFFFE, 0xFFFF} {
		p := fullPage(t, pageSentinel)
		require.True(t, p.remove(removed))
		require.False(t, p.saturated())
		assert.Equal(t, pageSize-1, p.size)
		assert.Equal(t, removed, p.empty, "removed offset becomes the marker")

		for i := 0; i < pageSize; i++ {
			v := uint16(i)
			require.Equal(t, v != removed, p.contains(v), "contains(%d) after removing %d", v, removed)
		}
		assert.Len(t, walkPage(p), pageSize-1)

		assert.False(t, p.remove(removed), "second remove of %d", removed)
		require.True(t, p.add(removed), "re-add %d", removed)
		assert.True(t, p.saturated())
	}
}

func TestPageSaturationAfterSentinelMoved(t *testing.T) {
	// The marker moves off 0xFFFF early, so the last offset added is 0xFFFE.
	p := newPage(minCapacity, zap.NewNop())
	require.True(t, p.add(0xFFFF))
	require.Equal(t, uint16(0xFFFE), p.empty)
	for i := 0; i < 0xFFFE; i++ {
		require.True(t, p.add(uint16(i)))
	}
	require.True(t, p.add(0xFFFE))
	assert.True(t, p.saturated())

	require.True(t, p.remove(0xFFFF))
	assert.False(t, p.contains(0xFFFF))
	assert.True(t, p.contains(0xFFFE))
	assert.Equal(t, pageSize-1, p.size)
}

func TestPageSentinelReassignment(t *testing.T) {
	p := newPage(minCapacity, zap.NewNop())
	require.True(t, p.add(0xFFFE))
	require.True(t, p.add(0xFFFF))
	assert.Equal(t, uint16(0xFFFD), p.empty)
	assert.True(t, p.contains(0xFFFE))
	assert.True(t, p.contains(0xFFFF))
	assert.False(t, p.contains(0xFFFD))
	assert.ElementsMatch(t, []uint16{0xFFFE, 0xFFFF}, walkPage(p))
}

func TestPageCapacityClamp(t *testing.T) {
	p := newPage(1<<20, zap.NewNop())
	assert.Equal(t, maxPageCapacity, len(p.slots))
}
