package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned by Get when a key is absent.
var ErrNotFound = errors.New("key not found")

type Store struct {
	db *badger.DB
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	opts := badger.DefaultOptions(filepath.Join(dataDir, "badger"))
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Store{db: db}, nil
}

// NewInMemoryStore opens a badger instance that never touches disk.
func NewInMemoryStore() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(namespace, key string) ([]byte, error) {
	fullKey := namespace + key
	var value []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fullKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = append([]byte{}, val...)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return value, err
}

func (s *Store) Set(namespace, key string, value []byte) error {
	fullKey := namespace + key
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(fullKey), value)
	})
}

// maxConflictRetries bounds how often SetIfAbsent re-runs after losing a
// commit race.
const maxConflictRetries = 5

// SetIfAbsent writes value only when key is not present. The read and the
// write share one transaction. A commit rejected with badger.ErrConflict is
// retried; the retry sees the winner's key and reports no write.
func (s *Store) SetIfAbsent(namespace, key string, value []byte) (bool, error) {
	fullKey := []byte(namespace + key)

	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		written := false
		err = s.db.Update(func(txn *badger.Txn) error {
			_, err := txn.Get(fullKey)
			switch {
			case err == nil:
				return nil
			case !errors.Is(err, badger.ErrKeyNotFound):
				return err
			}
			if err := txn.Set(fullKey, value); err != nil {
				return err
			}
			written = true
			return nil
		})
		if err == nil {
			return written, nil
		}
		if !errors.Is(err, badger.ErrConflict) {
			return false, err
		}
	}
	return false, err
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(namespace, key string) error {
	fullKey := namespace + key
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(fullKey))
	})
}

func (s *Store) List(namespace, prefix string, limit int) ([]string, error) {
	var keys []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		fullPrefix := []byte(namespace + prefix)
		count := 0
		for it.Seek(fullPrefix); it.ValidForPrefix(fullPrefix) && (limit <= 0 || count < limit); it.Next() {
			key := string(it.Item().Key())
			// Remove namespace prefix from result
			keys = append(keys, key[len(namespace):])
			count++
		}

		return nil
	})

	return keys, err
}
