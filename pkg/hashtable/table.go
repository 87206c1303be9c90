package hashtable

import (
	"iter"

	"github.com/mesh-intelligence/hashtable/pkg/types"
)

// noEntry terminates a chain and marks an empty bucket.
const noEntry = -1

var _ types.Map[string, string] = (*Table[string, string])(nil)

type entry[K, V any] struct {
	key   K
	value V
}

// Table is a chained hash table. The zero value is not usable; build one
// with New or one of the policy constructors.
type Table[K, V any] struct {
	heads   []int // bucket -> first entry index, len(heads) is the capacity
	links   []int // entry index -> next entry index in the same bucket
	entries []entry[K, V]
	free    []int // released entry slots, reused by Put
	size    int

	hash         HashFunc[K]
	compare      CompareFunc[K]
	destroyKey   DestroyFunc[K]
	destroyValue DestroyFunc[V]

	nilableKeys bool
	destroyed   bool
}

// New returns a table with capacity buckets that dispatches through s after
// applying opts. It fails with types.ErrZeroCapacity when capacity is not
// positive and with types.ErrMissingStrategy when s lacks Hash or Compare.
func New[K, V any](capacity int, s Strategy[K, V], opts ...Option[K, V]) (*Table[K, V], error) {
	for _, opt := range opts {
		opt(&s)
	}
	if capacity <= 0 {
		return nil, types.ErrZeroCapacity
	}
	if s.Hash == nil || s.Compare == nil {
		return nil, types.ErrMissingStrategy
	}
	t := &Table[K, V]{
		heads:        newHeads(capacity),
		hash:         s.Hash,
		compare:      s.Compare,
		destroyKey:   s.DestroyKey,
		destroyValue: s.DestroyValue,
		nilableKeys:  nilableKind[K](),
	}
	if t.destroyKey == nil {
		t.destroyKey = noDestroy[K]
	}
	if t.destroyValue == nil {
		t.destroyValue = noDestroy[V]
	}
	return t, nil
}

func newHeads(capacity int) []int {
	heads := make([]int, capacity)
	for i := range heads {
		heads[i] = noEntry
	}
	return heads
}

// Destroy clears the table and releases its buckets. It is a no-op on a nil
// or already destroyed table. Afterwards mutations fail with
// types.ErrDestroyed and lookups report not-found.
func (t *Table[K, V]) Destroy() {
	if t == nil || t.destroyed {
		return
	}
	t.Clear()
	t.heads = nil
	t.links = nil
	t.entries = nil
	t.free = nil
	t.destroyed = true
}

// Put stores value under key. If an equal key is already present its value
// is passed to the value destroyer and replaced in place; the stored key is
// kept and the key argument is not retained. Put never resizes the table.
func (t *Table[K, V]) Put(key K, value V) error {
	if t == nil {
		return types.ErrNilTable
	}
	if t.destroyed {
		return types.ErrDestroyed
	}
	if t.nilableKeys && isNil(key) {
		return types.ErrNilKey
	}

	b := t.bucket(key, len(t.heads))
	for i := t.heads[b]; i != noEntry; i = t.links[i] {
		if t.compare(t.entries[i].key, key) == 0 {
			t.destroyValue(t.entries[i].value)
			t.entries[i].value = value
			return nil
		}
	}

	i := t.alloc(key, value)
	t.links[i] = t.heads[b]
	t.heads[b] = i
	t.size++
	return nil
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	var zero V
	i := t.lookup(key)
	if i == noEntry {
		return zero, false
	}
	return t.entries[i].value, true
}

// Contains reports whether Get succeeds for key.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Remove unlinks the entry for key, then destroys its key and its value.
// It returns false and leaves the table unchanged when key is not present.
func (t *Table[K, V]) Remove(key K) bool {
	if !t.usable() || (t.nilableKeys && isNil(key)) {
		return false
	}

	b := t.bucket(key, len(t.heads))
	prev := noEntry
	for i := t.heads[b]; i != noEntry; prev, i = i, t.links[i] {
		if t.compare(t.entries[i].key, key) != 0 {
			continue
		}
		if prev == noEntry {
			t.heads[b] = t.links[i]
		} else {
			t.links[prev] = t.links[i]
		}
		e := t.release(i)
		t.size--
		t.destroyKey(e.key)
		t.destroyValue(e.value)
		return true
	}
	return false
}

// Size returns the number of stored entries; 0 for a nil table.
func (t *Table[K, V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Len is an alias of Size.
func (t *Table[K, V]) Len() int {
	return t.Size()
}

// Capacity returns the number of buckets; 0 for a nil or destroyed table.
func (t *Table[K, V]) Capacity() int {
	if t == nil {
		return 0
	}
	return len(t.heads)
}

// Clear destroys every entry, bucket by bucket, key before value. The bucket
// count is unchanged.
func (t *Table[K, V]) Clear() {
	if !t.usable() {
		return
	}
	for b, head := range t.heads {
		for i := head; i != noEntry; i = t.links[i] {
			t.destroyKey(t.entries[i].key)
			t.destroyValue(t.entries[i].value)
		}
		t.heads[b] = noEntry
	}
	clear(t.entries)
	t.entries = t.entries[:0]
	t.links = t.links[:0]
	t.free = t.free[:0]
	t.size = 0
}

// Resize rehashes every entry into newCapacity buckets. Entries keep their
// arena slots and their key and value; only chain membership changes.
// newCapacity must be positive and no smaller than Size. The new bucket and
// link arrays are built aside and swapped in at the end, so a failure
// (including a panicking hash function) leaves the table as it was.
func (t *Table[K, V]) Resize(newCapacity int) error {
	if t == nil {
		return types.ErrNilTable
	}
	if t.destroyed {
		return types.ErrDestroyed
	}
	if newCapacity <= 0 {
		return types.ErrZeroCapacity
	}
	if newCapacity < t.size {
		return types.ErrCapacityTooSmall
	}

	heads := newHeads(newCapacity)
	links := make([]int, len(t.links))
	for _, head := range t.heads {
		for i := head; i != noEntry; i = t.links[i] {
			nb := t.bucket(t.entries[i].key, newCapacity)
			links[i] = heads[nb]
			heads[nb] = i
		}
	}
	t.heads = heads
	t.links = links
	return nil
}

// All yields every entry in bucket order, then chain order. The order is
// unspecified across mutations. The table must not be modified during the
// traversal.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if !t.usable() {
			return
		}
		for _, head := range t.heads {
			for i := head; i != noEntry; i = t.links[i] {
				if !yield(t.entries[i].key, t.entries[i].value) {
					return
				}
			}
		}
	}
}

// ForEach calls fn for every entry until fn returns false.
func (t *Table[K, V]) ForEach(fn func(key K, value V) bool) {
	for k, v := range t.All() {
		if !fn(k, v) {
			return
		}
	}
}

// Keys returns the stored keys in traversal order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

func (t *Table[K, V]) usable() bool {
	return t != nil && !t.destroyed
}

// bucket returns the bucket index of key among capacity buckets.
func (t *Table[K, V]) bucket(key K, capacity int) int {
	return int(t.hash(key) % uint64(capacity))
}

// lookup returns the entry index for key, or noEntry.
func (t *Table[K, V]) lookup(key K) int {
	if !t.usable() || (t.nilableKeys && isNil(key)) {
		return noEntry
	}
	for i := t.heads[t.bucket(key, len(t.heads))]; i != noEntry; i = t.links[i] {
		if t.compare(t.entries[i].key, key) == 0 {
			return i
		}
	}
	return noEntry
}

// alloc stores key and value in a free arena slot and returns its index.
// The caller links the slot into a chain.
func (t *Table[K, V]) alloc(key K, value V) int {
	e := entry[K, V]{key: key, value: value}
	if n := len(t.free); n > 0 {
		i := t.free[n-1]
		t.free = t.free[:n-1]
		t.entries[i] = e
		return i
	}
	t.entries = append(t.entries, e)
	t.links = append(t.links, noEntry)
	return len(t.entries) - 1
}

// release empties slot i and returns what it held. The slot must already be
// unlinked from its chain.
func (t *Table[K, V]) release(i int) entry[K, V] {
	e := t.entries[i]
	t.entries[i] = entry[K, V]{}
	t.links[i] = noEntry
	t.free = append(t.free, i)
	return e
}
