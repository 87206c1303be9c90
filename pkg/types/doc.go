// Package types defines the Map interface, table configuration, and the
// standard error values shared by the hash table packages.
//
// See pkg/hashtable for the chained implementation.
package types
