package sets

import (
	"golang.org/x/exp/constraints"
	"iter"
)

// IntCompactSet is a set of integers kept in a plain slot array without any
// occupancy bitmap. One value of T that is not in the set marks free slots.
// Initially that is the maximum of T minus 42; adding it moves the marker to
// the next lower absent value.
//
// For 8- and 16-bit types the set may hold every value of the domain. The
// marker is then counted as present without being stored.
//
// Iteration works on a snapshot.
type IntCompactSet[T constraints.Integer] struct {
	t intTable[T]
}

// NewIntCompactSet returns an empty set.
func NewIntCompactSet[T constraints.Integer](opts ...Option) *IntCompactSet[T] {
	o := newOptions(opts)
	return &IntCompactSet[T]{
		t: newIntTable(o.capacity, intSentinel[T](), spread[T], o.named("int")),
	}
}

// Add inserts v and reports whether it was absent.
func (s *IntCompactSet[T]) Add(v T) bool {
	return s.t.add(v)
}

// Remove deletes v and reports whether it was present.
func (s *IntCompactSet[T]) Remove(v T) bool {
	return s.t.remove(v)
}

// Contains reports whether v is in the set.
func (s *IntCompactSet[T]) Contains(v T) bool {
	return s.t.contains(v)
}

// Size returns the number of elements.
func (s *IntCompactSet[T]) Size() int {
	return s.t.size
}

// Empty returns true if the set has no elements.
func (s *IntCompactSet[T]) Empty() bool {
	return s.t.size == 0
}

// Values returns a snapshot of the elements.
func (s *IntCompactSet[T]) Values() []T {
	return s.t.values()
}

// Iterator returns an iterator over a snapshot of the elements.
func (s *IntCompactSet[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{vals: s.t.values()}
}

// All returns a sequence over a snapshot of the elements.
func (s *IntCompactSet[T]) All() iter.Seq[T] {
	return seqOf(s.t.values())
}

// MemoryUsage estimates the bytes held by the set.
func (s *IntCompactSet[T]) MemoryUsage() int64 {
	return s.t.memoryUsage()
}
