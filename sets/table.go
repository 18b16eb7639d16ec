package sets

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	loadFactor   = 0.75
	resizeFactor = 1.5
	minCapacity  = 3
)

// table is an open addressing slot array with linear probing. A slot holding
// empty is free; every other slot holds exactly one distinct element.
//
// Lookup, insertion, deletion and the post-delete shift all go through find,
// so an element is always reachable from its probe start without crossing a
// free slot.
type table[T comparable] struct {
	slots []T
	size  int
	empty T
	hash  func(T) uint64
	log   *zap.Logger
}

func newTable[T comparable](capacity int, empty T, hash func(T) uint64, log *zap.Logger) table[T] {
	t := table[T]{
		empty: empty,
		hash:  hash,
		log:   log,
	}
	t.slots = t.alloc(capacity)
	return t
}

// alloc returns n free slots.
func (t *table[T]) alloc(n int) []T {
	slots := make([]T, n)
	var zero T
	if t.empty != zero {
		for i := range slots {
			slots[i] = t.empty
		}
	}
	return slots
}

func (t *table[T]) next(i int) int {
	return (i + 1) % len(t.slots)
}

// find returns the slot holding v, or the free slot where v would go.
// The load factor keeps at least one slot free, so the probe terminates.
func (t *table[T]) find(v T) int {
	for i := int(t.hash(v) % uint64(len(t.slots))); ; i = t.next(i) {
		if s := t.slots[i]; s == t.empty || s == v {
			return i
		}
	}
}

func (t *table[T]) contains(v T) bool {
	return t.slots[t.find(v)] != t.empty
}

// insert stores v and reports whether it was absent.
func (t *table[T]) insert(v T) bool {
	i := t.find(v)
	if t.slots[i] != t.empty {
		return false
	}
	if crowded(t.size+1, len(t.slots)) {
		t.grow()
		i = t.find(v)
	}
	t.slots[i] = v
	t.size++
	return true
}

// crowded reports whether size elements in n slots exceed the load factor.
func crowded(size, n int) bool {
	return float64(size) >= loadFactor*float64(n)
}

// grow moves every element into a larger slot array. The capacity steps by
// resizeFactor until one more element fits under the load factor. Probe
// starts depend on the capacity, so each element is placed again from
// scratch.
func (t *table[T]) grow() {
	old := t.slots
	n := len(old)
	for crowded(t.size+1, n) {
		n = max(int(resizeFactor*float64(n)), n+1)
	}
	t.slots = t.alloc(n)
	for _, v := range old {
		if v != t.empty {
			t.slots[t.find(v)] = v
		}
	}
	if ce := t.log.Check(zapcore.DebugLevel, "slot array grown"); ce != nil {
		ce.Write(zap.Int("from", len(old)), zap.Int("to", n), zap.Int("size", t.size))
	}
}

// delete removes v and reports whether it was present.
func (t *table[T]) delete(v T) bool {
	i := t.find(v)
	if t.slots[i] == t.empty {
		return false
	}
	t.slots[i] = t.empty
	t.shift(i)
	t.size--
	return true
}

// shift restores reachability after slot i was freed. Every element of the
// cluster following i is moved to the slot find now picks for it. Nothing
// past the first free slot can have probed across i.
func (t *table[T]) shift(i int) {
	for j := t.next(i); t.slots[j] != t.empty; j = t.next(j) {
		v := t.slots[j]
		if v != v {
			// Never equal to itself (NaN), so unreachable wherever it sits.
			continue
		}
		if k := t.find(v); k != j {
			t.slots[k] = v
			t.slots[j] = t.empty
		}
	}
}

// rewrite turns every free slot holding from into to and makes to the empty
// marker. No element may equal to.
func (t *table[T]) rewrite(from, to T) {
	for i, v := range t.slots {
		if v == from {
			t.slots[i] = to
		}
	}
	t.empty = to
}

// values returns the elements in slot order.
func (t *table[T]) values() []T {
	vals := make([]T, 0, t.size)
	for _, v := range t.slots {
		if v != t.empty {
			vals = append(vals, v)
		}
	}
	return vals
}
