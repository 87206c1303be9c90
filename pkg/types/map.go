package types

import "errors"

// Map provides key/value storage over caller-supplied hash, compare, and
// destroy strategies. Lookups report absence through a boolean; mutations
// that can be rejected return one of the errors below.
type Map[K, V any] interface {
	// Put inserts key with value, or replaces the value of an equal key.
	// A replaced value is handed to the value destroyer before it is dropped.
	Put(key K, value V) error

	// Get returns the value stored under a key equal to key.
	Get(key K) (V, bool)

	// Remove unlinks the entry for key and destroys its key and value.
	// Returns false if no entry matched.
	Remove(key K) bool

	// Contains reports whether Get would succeed for key.
	Contains(key K) bool

	// Size returns the number of stored entries.
	Size() int

	// Clear destroys every entry. Capacity is unchanged.
	Clear()

	// Resize rehashes every entry into newCapacity buckets.
	Resize(newCapacity int) error

	// Destroy clears the map and releases its buckets.
	Destroy()
}

// Argument and state errors.
var (
	ErrNilTable         = errors.New("hash table is nil")
	ErrNilKey           = errors.New("key is nil")
	ErrZeroCapacity     = errors.New("capacity must be positive")
	ErrCapacityTooSmall = errors.New("capacity is smaller than the number of entries")
	ErrMissingStrategy  = errors.New("hash and compare strategies are required")
	ErrDestroyed        = errors.New("hash table is destroyed")
)

// Configuration errors.
var (
	ErrUnknownHash = errors.New("unknown key hash")
)
