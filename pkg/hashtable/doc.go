// Package hashtable implements a generic chained hash table whose hashing,
// key comparison, and key/value reclamation are supplied by the caller.
//
// Entries live in an arena addressed by index. Each bucket stores the index
// of the head of its chain, and chains are singly linked through a parallel
// link array with the newest entry first. The table never grows on its own:
// Resize is the only operation that changes the bucket count, and it
// rehashes every entry in one pass.
//
// A Table is not safe for concurrent use. Callers sharing one across
// goroutines must guard the whole table with a single lock.
package hashtable
