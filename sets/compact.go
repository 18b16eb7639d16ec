package sets

import "iter"

// entry is a CompactSet slot. The zero entry marks a free slot, so every
// value of T, the zero value included, can be stored.
type entry[T comparable] struct {
	val  T
	used bool
}

// CompactSet is a set of comparable values kept directly in one slot array.
//
// Colliding values go to the next free slot of the cluster. Iteration works
// on a snapshot, so the set may be changed while an iterator is in use.
//
// Values that are not equal to themselves, such as a float NaN, can be added
// but never found or removed: every Add of a NaN stores a new element.
type CompactSet[T comparable] struct {
	t table[entry[T]]
}

// NewCompactSet returns an empty set hashing its values with hash/maphash.
func NewCompactSet[T comparable](opts ...Option) *CompactSet[T] {
	return NewCompactSetFunc(comparableHash[T](), opts...)
}

// NewCompactSetFunc returns an empty set hashing its values with hash.
func NewCompactSetFunc[T comparable](hash HashFunc[T], opts ...Option) *CompactSet[T] {
	o := newOptions(opts)
	probe := func(e entry[T]) uint64 {
		return spread(int32(hash(e.val)))
	}
	return &CompactSet[T]{
		t: newTable(o.capacity, entry[T]{}, probe, o.named("compact")),
	}
}

// Add inserts v and reports whether it was absent.
func (s *CompactSet[T]) Add(v T) bool {
	return s.t.insert(entry[T]{val: v, used: true})
}

// Remove deletes v and reports whether it was present.
func (s *CompactSet[T]) Remove(v T) bool {
	return s.t.delete(entry[T]{val: v, used: true})
}

// Contains reports whether v is in the set.
func (s *CompactSet[T]) Contains(v T) bool {
	return s.t.contains(entry[T]{val: v, used: true})
}

// Size returns the number of elements.
func (s *CompactSet[T]) Size() int {
	return s.t.size
}

// Empty returns true if the set has no elements.
func (s *CompactSet[T]) Empty() bool {
	return s.t.size == 0
}

// Values returns a snapshot of the elements.
func (s *CompactSet[T]) Values() []T {
	vals := make([]T, 0, s.t.size)
	for _, e := range s.t.slots {
		if e.used {
			vals = append(vals, e.val)
		}
	}
	return vals
}

// Iterator returns an iterator over a snapshot of the elements.
func (s *CompactSet[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{vals: s.Values()}
}

// All returns a sequence over a snapshot of the elements.
func (s *CompactSet[T]) All() iter.Seq[T] {
	return seqOf(s.Values())
}

// MemoryUsage estimates the bytes held by the set, not counting memory that
// elements reference.
func (s *CompactSet[T]) MemoryUsage() int64 {
	return s.t.memoryUsage()
}
