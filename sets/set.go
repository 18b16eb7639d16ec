package sets

import "iter"

// Set is the contract shared by every container in this package.
type Set[T any] interface {
	// Add inserts v and reports whether it was absent.
	Add(v T) bool
	// Remove deletes v and reports whether it was present.
	Remove(v T) bool
	Contains(v T) bool
	Size() int
	Empty() bool
	// Iterator returns an iterator over the elements in unspecified order.
	Iterator() Iterator[T]
	All() iter.Seq[T]
	// Values returns a copy of the elements in unspecified order.
	Values() []T
	// MemoryUsage estimates the bytes held by the set.
	MemoryUsage() int64
}

var (
	_ Set[string] = (*CompactSet[string])(nil)
	_ Set[int32]  = (*IntCompactSet[int32])(nil)
	_ Set[int32]  = (*PagedIntSet)(nil)
)
