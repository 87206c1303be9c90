package hashtable

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/hashtable/pkg/types"
)

// DJB2 is Bernstein's string hash: h = h*33 + c over the bytes of s,
// starting from 5381.
func DJB2(s string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(s); i++ {
		h = h<<5 + h + uint64(s[i])
	}
	return h
}

// CompareStrings orders strings lexicographically by byte.
func CompareStrings(a, b string) int {
	return strings.Compare(a, b)
}

// StringStrategy hashes keys with DJB2 and compares them lexicographically.
// Strings are immutable and collected by the runtime, so no destroyers are
// set; callers needing release hooks pass WithKeyDestroyer or
// WithValueDestroyer to the constructor.
func StringStrategy[V any]() Strategy[string, V] {
	return Strategy[string, V]{
		Hash:    DJB2,
		Compare: CompareStrings,
	}
}

// NewStringMap returns a string to string table using StringStrategy.
func NewStringMap(capacity int, opts ...Option[string, string]) (*Table[string, string], error) {
	return New(capacity, StringStrategy[string](), opts...)
}

// StringHasher returns the string hash registered under name
// (types.HashDJB2, types.HashXXHash or types.HashMaphash).
func StringHasher(name string) (HashFunc[string], error) {
	switch name {
	case types.HashDJB2:
		return DJB2, nil
	case types.HashXXHash:
		return XXHashString, nil
	case types.HashMaphash:
		return ComparableHasher[string](), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownHash, name)
	}
}

// NewStringMapFromConfig validates cfg and returns a string to string table
// with the configured capacity and key hash.
func NewStringMapFromConfig(cfg types.Config, opts ...Option[string, string]) (*Table[string, string], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	hash, err := StringHasher(cfg.KeyHash)
	if err != nil {
		return nil, err
	}
	s := StringStrategy[string]()
	s.Hash = hash
	return New(cfg.InitialCapacity, s, opts...)
}
