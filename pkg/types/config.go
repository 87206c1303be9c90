package types

// Config holds the parameters for building a string-keyed table from a
// config file.
type Config struct {
	InitialCapacity int    `json:"initial_capacity" yaml:"initial_capacity" mapstructure:"initial_capacity"`
	KeyHash         string `json:"key_hash" yaml:"key_hash" mapstructure:"key_hash"`
}

// Supported key hash names.
const (
	HashDJB2    = "djb2"
	HashXXHash  = "xxhash"
	HashMaphash = "maphash"
)

// DefaultCapacity is the bucket count used when no capacity is configured.
const DefaultCapacity = 16

// knownHashes lists the hash names that Validate accepts.
var knownHashes = map[string]bool{
	HashDJB2:    true,
	HashXXHash:  true,
	HashMaphash: true,
}

// DefaultConfig returns a Config with the default capacity and djb2 hashing.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultCapacity,
		KeyHash:         HashDJB2,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.InitialCapacity <= 0 {
		return ErrZeroCapacity
	}
	if !knownHashes[c.KeyHash] {
		return ErrUnknownHash
	}
	return nil
}
