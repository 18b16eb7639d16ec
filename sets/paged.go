package sets

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"iter"
)

// PagedIntSet is a set of int32 keys for large, sparse key spaces.
//
// A key is split into a page id (the high 16 bits, sign included) and a
// 16-bit offset. Each page holding at least one key stores its offsets in a
// compact 16-bit table; pages are created on first insert and dropped when
// they become empty.
//
// Iterator and All walk the live pages rather than a snapshot. Changing the
// set during such a walk may skip, repeat or miss keys. Use Values to get a
// snapshot.
type PagedIntSet struct {
	pages    *dict[int32, *page]
	capacity int
	log      *zap.Logger
}

// NewPagedIntSet returns an empty set.
func NewPagedIntSet(opts ...Option) *PagedIntSet {
	o := newOptions(opts)
	return &PagedIntSet{
		pages:    newDict[int32, *page](dictInitSize, spread[int32]),
		capacity: o.capacity,
		log:      o.named("paged"),
	}
}

func split(key int32) (int32, uint16) {
	return key >> pageBits, uint16(key)
}

// Add inserts key and reports whether it was absent.
func (s *PagedIntSet) Add(key int32) bool {
	id, offset := split(key)
	pg, ok := s.pages.Get(id)
	if !ok {
		pg = newPage(s.capacity, s.log)
		s.pages.Set(id, pg)
		s.debug("page created", id)
	}
	if !pg.add(offset) {
		return false
	}
	if pg.saturated() {
		s.debug("page saturated", id)
	}
	return true
}

// Remove deletes key and reports whether it was present.
func (s *PagedIntSet) Remove(key int32) bool {
	id, offset := split(key)
	pg, ok := s.pages.Get(id)
	if !ok {
		return false
	}
	full := pg.saturated()
	if !pg.remove(offset) {
		return false
	}
	if full {
		s.debug("page left saturation", id)
	}
	if pg.size == 0 {
		s.pages.Delete(id)
		s.debug("page dropped", id)
	}
	return true
}

// Contains reports whether key is in the set.
func (s *PagedIntSet) Contains(key int32) bool {
	id, offset := split(key)
	pg, ok := s.pages.Get(id)
	if !ok {
		return false
	}
	return pg.contains(offset)
}

// Size returns the number of keys. It sums the page sizes on every call.
func (s *PagedIntSet) Size() int {
	n := 0
	c := s.pages.cursor()
	for _, pg, ok := c.next(); ok; _, pg, ok = c.next() {
		n += pg.size
	}
	return n
}

// Empty returns true if the set has no keys.
func (s *PagedIntSet) Empty() bool {
	return s.pages.Empty()
}

// Pages returns the number of pages currently allocated.
func (s *PagedIntSet) Pages() int {
	return s.pages.Len()
}

// Iterator returns a live iterator over the keys. It is not restartable.
func (s *PagedIntSet) Iterator() Iterator[int32] {
	return &pagedIterator{pages: s.pages.cursor()}
}

// All returns a sequence walking the live pages.
func (s *PagedIntSet) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		it := pagedIterator{pages: s.pages.cursor()}
		for it.HasNext() {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a snapshot of the keys.
func (s *PagedIntSet) Values() []int32 {
	vals := make([]int32, 0, s.Size())
	for v := range s.All() {
		vals = append(vals, v)
	}
	return vals
}

// MemoryUsage estimates the bytes held by the set and its pages.
func (s *PagedIntSet) MemoryUsage() int64 {
	n := sizeOf[PagedIntSet]() + s.pages.memoryUsage()
	c := s.pages.cursor()
	for _, pg, ok := c.next(); ok; _, pg, ok = c.next() {
		n += pg.memoryUsage()
	}
	return n
}

func (s *PagedIntSet) debug(msg string, id int32) {
	if ce := s.log.Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(zap.Int32("page", id), zap.Int("pages", s.pages.Len()))
	}
}

// pagedIterator walks the page directory and, within each page, its slot
// array. One key is looked ahead so HasNext can answer.
type pagedIterator struct {
	pages   dictCursor[int32, *page]
	pg      *page
	high    int32
	slot    int
	val     int32
	pending bool
	done    bool
}

func (it *pagedIterator) HasNext() bool {
	if !it.pending && !it.done {
		it.pending = it.advance()
		it.done = !it.pending
	}
	return it.pending
}

func (it *pagedIterator) Next() (int32, error) {
	if !it.HasNext() {
		return 0, ErrExhausted
	}
	it.pending = false
	return it.val, nil
}

func (it *pagedIterator) advance() bool {
	for {
		if it.pg == nil {
			id, pg, ok := it.pages.next()
			if !ok {
				return false
			}
			it.pg, it.high, it.slot = pg, id<<pageBits, 0
		}
		offset, next, ok := it.pg.scan(it.slot)
		if ok {
			it.slot = next
			it.val = it.high | int32(offset)
			return true
		}
		it.pg = nil
	}
}
