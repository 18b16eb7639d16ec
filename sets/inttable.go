package sets

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"
	"unsafe"
)

// intTable is a table whose empty marker is an ordinary value of the integer
// domain. Before that value can be stored the marker moves to another value.
//
// Once every value but the marker is stored, adding the marker cannot move it
// anywhere. The table then records size == cardinality and answers every
// lookup with true. The slot array is left as it was: it still holds every
// value except the marker. Only 8- and 16-bit domains can get there.
type intTable[T constraints.Integer] struct {
	table[T]
	cardinality int
}

func newIntTable[T constraints.Integer](capacity int, empty T, hash func(T) uint64, log *zap.Logger) intTable[T] {
	return intTable[T]{
		table:       newTable(capacity, empty, hash, log),
		cardinality: cardinality[T](),
	}
}

// maxValue returns the largest value of T.
func maxValue[T constraints.Integer]() T {
	ones := ^T(0)
	if ones > 0 {
		return ones
	}
	return T(uint64(1)<<(8*unsafe.Sizeof(ones)-1) - 1)
}

// cardinality returns the number of values of T, or -1 when a table could
// never hold them all.
func cardinality[T constraints.Integer]() int {
	var v T
	if bits := 8 * unsafe.Sizeof(v); bits <= 16 {
		return 1 << bits
	}
	return -1
}

// intSentinel is the initial empty marker of an IntCompactSet, chosen well
// away from small values. For int32 it is math.MaxInt32 - 42.
func intSentinel[T constraints.Integer]() T {
	return maxValue[T]() - 42
}

func (t *intTable[T]) saturated() bool {
	return t.size == t.cardinality
}

func (t *intTable[T]) add(v T) bool {
	if t.saturated() {
		return false
	}
	if v == t.empty {
		if t.size == t.cardinality-1 {
			t.size = t.cardinality
			return true
		}
		t.reserve()
	}
	return t.insert(v)
}

func (t *intTable[T]) remove(v T) bool {
	if t.saturated() {
		t.unsaturate(v)
		return true
	}
	return t.delete(v)
}

func (t *intTable[T]) contains(v T) bool {
	if t.saturated() {
		return true
	}
	return t.table.contains(v)
}

// reserve frees the current empty marker for storage. It walks down from the
// marker, wrapping at the bottom of the domain, to the first absent value and
// rewrites every free slot to it. The walk uses only lookups, so it can never
// trigger another reservation. The caller guarantees an absent value other
// than the marker exists.
func (t *intTable[T]) reserve() {
	old := t.empty
	next := old - 1
	for t.table.contains(next) {
		next--
	}
	t.rewrite(old, next)
	if ce := t.log.Check(zapcore.DebugLevel, "sentinel reassigned"); ce != nil {
		ce.Write(zap.Any("from", old), zap.Any("to", next), zap.Int("size", t.size))
	}
}

// unsaturate removes v from a full table. v becomes the new marker and the
// old marker, which stood for a present value, is stored like any other.
// Removing the marker value itself only has to drop the size.
func (t *intTable[T]) unsaturate(v T) {
	t.size = t.cardinality - 1
	if v == t.empty {
		return
	}
	old := t.empty
	t.delete(v)
	t.rewrite(old, v)
	t.insert(old)
}

// scan returns the first value stored at or after slot i and the slot to
// resume from. While the table is saturated, slot len(t.slots) stands for the
// marker value itself.
func (t *intTable[T]) scan(i int) (T, int, bool) {
	for ; i < len(t.slots); i++ {
		if v := t.slots[i]; v != t.empty {
			return v, i + 1, true
		}
	}
	if i == len(t.slots) && t.saturated() {
		return t.empty, i + 1, true
	}
	var zero T
	return zero, i, false
}

// values returns the elements in slot order, the marker last when saturated.
func (t *intTable[T]) values() []T {
	vals := t.table.values()
	if t.saturated() {
		vals = append(vals, t.empty)
	}
	return vals
}
