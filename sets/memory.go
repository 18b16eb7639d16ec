package sets

import "unsafe"

// sizeOf returns the in-memory size of one T. Only the inline part is
// counted; data behind pointers, strings or slices held by T is not.
func sizeOf[T any]() int64 {
	var v T
	return int64(unsafe.Sizeof(v))
}

// slotBytes returns the bytes held by a slot array, counting unused capacity.
func slotBytes[T any](slots []T) int64 {
	return int64(cap(slots)) * sizeOf[T]()
}

func (t *table[T]) memoryUsage() int64 {
	return sizeOf[table[T]]() + slotBytes(t.slots)
}
