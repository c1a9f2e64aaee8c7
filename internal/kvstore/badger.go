package kvstore

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerKV backs the namespace with Badger. Badger holds an exclusive lock
// on its directory, so this backend is single-process only; it exists for
// installs that keep everything in one process and want a real KV engine.
type BadgerKV struct {
	db *badger.DB
}

// OpenBadger opens (creating if needed) a Badger-backed namespace.
func OpenBadger(dir string) (*BadgerKV, error) {
	opts := badger.DefaultOptions(dir).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open namespace database: %w", err)
	}
	return &BadgerKV{db: db}, nil
}

func (s *BadgerKV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *BadgerKV) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *BadgerKV) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *BadgerKV) Close() error {
	return s.db.Close()
}
