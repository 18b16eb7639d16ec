package sets

import "iter"

// Iterator walks the elements of a set once.
//
// Next may be called without HasNext. Once the elements are used up, every
// call to Next returns ErrExhausted.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// sliceIterator iterates a snapshot taken when the iterator was created.
type sliceIterator[T any] struct {
	vals []T
	i    int
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.i < len(it.vals)
}

func (it *sliceIterator[T]) Next() (T, error) {
	if it.i >= len(it.vals) {
		var zero T
		return zero, ErrExhausted
	}
	v := it.vals[it.i]
	it.i++
	return v, nil
}

func seqOf[T any](vals []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}
