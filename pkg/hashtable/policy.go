package hashtable

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
	"github.com/google/uuid"
)

// XXHashBytes hashes b with xxHash64.
func XXHashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// XXHashString hashes s with xxhash without copying it to a byte slice.
func XXHashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// CompareBytes orders byte slices lexicographically.
func CompareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// BytesStrategy hashes byte slice keys with xxHash64. A nil slice is an
// absent key; an empty non-nil slice is a valid one.
func BytesStrategy[V any]() Strategy[[]byte, V] {
	return Strategy[[]byte, V]{
		Hash:    XXHashBytes,
		Compare: CompareBytes,
	}
}

// NewBytesMap returns a table keyed by byte slices. The table keeps the
// caller's slices, so they must not be modified while stored.
func NewBytesMap[V any](capacity int, opts ...Option[[]byte, V]) (*Table[[]byte, V], error) {
	return New(capacity, BytesStrategy[V](), opts...)
}

// ComparableHasher returns a seeded hash over any comparable key type. The
// seed is fixed per returned function, so every table built from it must
// keep using the same function.
func ComparableHasher[K comparable]() HashFunc[K] {
	return maphash.NewHasher[K]().Hash
}

// CompareComparable reports 0 when a == b and 1 otherwise.
func CompareComparable[K comparable](a, b K) int {
	if a == b {
		return 0
	}
	return 1
}

// ComparableStrategy uses the runtime's hash for K and == for equality.
func ComparableStrategy[K comparable, V any]() Strategy[K, V] {
	return Strategy[K, V]{
		Hash:    ComparableHasher[K](),
		Compare: CompareComparable[K],
	}
}

// NewComparableMap returns a table for any comparable key type.
func NewComparableMap[K comparable, V any](capacity int, opts ...Option[K, V]) (*Table[K, V], error) {
	return New(capacity, ComparableStrategy[K, V](), opts...)
}

// HashUUID hashes the 16 bytes of id with xxHash64.
func HashUUID(id uuid.UUID) uint64 {
	return xxhash.Sum64(id[:])
}

// CompareUUID orders UUIDs by their bytes.
func CompareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// UUIDStrategy hashes UUID keys with HashUUID.
func UUIDStrategy[V any]() Strategy[uuid.UUID, V] {
	return Strategy[uuid.UUID, V]{
		Hash:    HashUUID,
		Compare: CompareUUID,
	}
}

// NewUUIDMap returns a table keyed by UUIDs.
func NewUUIDMap[V any](capacity int, opts ...Option[uuid.UUID, V]) (*Table[uuid.UUID, V], error) {
	return New(capacity, UUIDStrategy[V](), opts...)
}
