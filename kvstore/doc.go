// Package kvstore is an in-memory key-value store whose entries expire
// after a per-key TTL.
//
// Values live in a map of key → (value, expireAt, generation). Every Put
// also pushes (expireAt, key, generation) onto a min-heap. Cleanup pops
// heap entries whose time has come and deletes the key only if the entry
// still carries the same generation; entries left behind by an overwrite
// or Delete are discarded without touching the map.
//
// An entry is expired once expireAt <= now. Get never returns an expired
// value, even between cleanups. The Store is safe for concurrent use.
package kvstore
