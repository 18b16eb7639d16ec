package sets

const (
	dictLoadFactor = 0.7
	dictInitSize   = 8
)

type dictEntry[K comparable, V any] struct {
	Key   K
	Value V
	Next  *dictEntry[K, V]
}

// dict is a chained hash table. PagedIntSet uses it as its page directory
// because, unlike a builtin map, it can be walked with a cursor that a
// caller resumes between calls.
type dict[K comparable, V any] struct {
	table []*dictEntry[K, V]
	count int
	hash  func(K) uint64
}

func newDict[K comparable, V any](initSize int, hash func(K) uint64) *dict[K, V] {
	return &dict[K, V]{
		table: make([]*dictEntry[K, V], max(initSize, 1)),
		hash:  hash,
	}
}

func (d *dict[K, V]) index(key K) int {
	return int(d.hash(key) % uint64(len(d.table)))
}

// Set inserts key or updates its value.
func (d *dict[K, V]) Set(key K, value V) {
	if float64(d.count)/float64(len(d.table)) > dictLoadFactor {
		d.resize()
	}

	index := d.index(key)
	for curr := d.table[index]; curr != nil; curr = curr.Next {
		if curr.Key == key {
			curr.Value = value
			return
		}
	}
	d.table[index] = &dictEntry[K, V]{Key: key, Value: value, Next: d.table[index]}
	d.count++
}

// resize doubles the bucket array and relinks every entry.
func (d *dict[K, V]) resize() {
	old := d.table
	d.table = make([]*dictEntry[K, V], len(old)*2)
	for _, entry := range old {
		for entry != nil {
			next := entry.Next
			index := d.index(entry.Key)
			entry.Next = d.table[index]
			d.table[index] = entry
			entry = next
		}
	}
}

// Delete removes key and reports whether it was present.
func (d *dict[K, V]) Delete(key K) bool {
	index := d.index(key)
	var prev *dictEntry[K, V]
	for curr := d.table[index]; curr != nil; prev, curr = curr, curr.Next {
		if curr.Key != key {
			continue
		}
		if prev == nil {
			d.table[index] = curr.Next
		} else {
			prev.Next = curr.Next
		}
		d.count--
		return true
	}
	return false
}

func (d *dict[K, V]) Get(key K) (V, bool) {
	for curr := d.table[d.index(key)]; curr != nil; curr = curr.Next {
		if curr.Key == key {
			return curr.Value, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of entries.
func (d *dict[K, V]) Len() int {
	return d.count
}

// Empty returns true if the dict has no entries.
func (d *dict[K, V]) Empty() bool {
	return d.count == 0
}

func (d *dict[K, V]) memoryUsage() int64 {
	return sizeOf[dict[K, V]]() + slotBytes(d.table) + int64(d.count)*sizeOf[dictEntry[K, V]]()
}

// dictCursor walks a dict bucket by bucket. It sees a consistent view only
// while the dict is not modified.
type dictCursor[K comparable, V any] struct {
	d      *dict[K, V]
	bucket int
	entry  *dictEntry[K, V]
}

func (d *dict[K, V]) cursor() dictCursor[K, V] {
	return dictCursor[K, V]{d: d}
}

func (c *dictCursor[K, V]) next() (K, V, bool) {
	if c.entry != nil {
		c.entry = c.entry.Next
	}
	for c.entry == nil {
		if c.bucket >= len(c.d.table) {
			var (
				key   K
				value V
			)
			return key, value, false
		}
		c.entry = c.d.table[c.bucket]
		c.bucket++
	}
	return c.entry.Key, c.entry.Value, true
}
