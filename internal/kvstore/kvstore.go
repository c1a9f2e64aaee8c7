// Package kvstore provides the shared namespace every moodlog surface reads
// and writes: a flat key/value store with atomic single-key operations and
// no cross-key transactions.
package kvstore

import "strings"

// KV is a shared key/value namespace. Implementations guarantee that a Set
// for a single key is atomic with respect to concurrent readers, and nothing
// more: there is no multi-key transaction, so two keys written back to back
// have a window where a reader in another process sees one updated and the
// other stale.
type KV interface {
	// Get returns the value for key. The second result is false when the
	// key has never been written (not an error).
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Open selects a backend from the namespace path, the same way the config
// path picks the storage flavor elsewhere in the tool:
//
//	path ending in .db     -> SQLite
//	path ending in .badger -> Badger
//	anything else          -> one file per key under a directory
//
// The directory backend is the default and the only one safe to share
// between independent processes.
func Open(path string) (KV, error) {
	switch {
	case strings.HasSuffix(path, ".db"):
		return OpenSQLite(path)
	case strings.HasSuffix(path, ".badger"):
		return OpenBadger(path)
	default:
		return OpenDir(path)
	}
}
