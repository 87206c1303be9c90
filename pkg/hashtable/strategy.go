package hashtable

import "reflect"

// HashFunc maps a key to a bucket-independent hash code.
type HashFunc[K any] func(K) uint64

// CompareFunc returns 0 when a and b are the same key. The sign of other
// results is not used by the table.
type CompareFunc[K any] func(a, b K) int

// DestroyFunc releases a key or value the table owns. It is called when the
// entry holding it is removed, overwritten (values only), or cleared.
type DestroyFunc[T any] func(T)

// Strategy is the set of functions a Table dispatches through. Hash and
// Compare are required. A nil destroyer means the caller keeps ownership of
// that side of every entry.
type Strategy[K, V any] struct {
	Hash         HashFunc[K]
	Compare      CompareFunc[K]
	DestroyKey   DestroyFunc[K]
	DestroyValue DestroyFunc[V]
}

func noDestroy[T any](T) {}

// nilableKind reports whether values of K can be nil.
func nilableKind[K any]() bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether key is a nil pointer, map, slice, func, chan or
// interface.
func isNil[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Option adjusts the Strategy a table is built with.
type Option[K, V any] func(*Strategy[K, V])

// WithKeyDestroyer makes the table own its keys: fn receives each key when
// its entry is removed, cleared, or destroyed.
func WithKeyDestroyer[K, V any](fn DestroyFunc[K]) Option[K, V] {
	return func(s *Strategy[K, V]) {
		s.DestroyKey = fn
	}
}

// WithValueDestroyer makes the table own its values: fn receives each value
// when it is overwritten, removed, cleared, or destroyed.
func WithValueDestroyer[K, V any](fn DestroyFunc[V]) Option[K, V] {
	return func(s *Strategy[K, V]) {
		s.DestroyValue = fn
	}
}
