package sets

import "go.uber.org/zap"

const (
	pageBits = 16
	// pageSize is the number of distinct offsets in a page. A page whose
	// size equals pageSize holds all of them.
	pageSize     = 1 << pageBits
	pageSentinel = 0xFFFF
	// maxPageCapacity is enough slots for pageSize-1 elements under the
	// load factor.
	maxPageCapacity = 1 << 17
)

// page is a sentinel table over the 16-bit offsets of one page. A page
// holding every offset is saturated.
type page struct {
	intTable[uint16]
}

func newPage(capacity int, log *zap.Logger) *page {
	return &page{newIntTable[uint16](min(capacity, maxPageCapacity), pageSentinel, pageHash, log)}
}

// pageHash computes the probe start in a wider type, so offsets*3 do not
// wrap at 16 bits.
func pageHash(v uint16) uint64 {
	return uint64(v) * 3
}
