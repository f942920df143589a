package db

import (
	"fmt"
	"path/filepath"
	"sync"
)

// Manager manages per-namespace database instances
type Manager struct {
	mu       sync.RWMutex
	stores   map[string]*Store
	buckets  map[string]*Bucket
	dataDir  string
	inMemory bool
}

func NewManager(dataDir string) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		buckets: make(map[string]*Bucket),
		dataDir: dataDir,
	}
}

// NewInMemoryManager returns a Manager whose stores live only in memory.
func NewInMemoryManager() *Manager {
	m := NewManager("")
	m.inMemory = true
	return m
}

// GetStore returns the database store for a namespace, creating it if needed
func (m *Manager) GetStore(namespace string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeLocked(namespace)
}

// Bucket returns the key-value view of a namespace. The same *Bucket is
// returned on every call so callers can lock on its identity.
func (m *Manager) Bucket(namespace string) (*Bucket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.buckets[namespace]; ok {
		return b, nil
	}
	store, err := m.storeLocked(namespace)
	if err != nil {
		return nil, err
	}
	b := NewBucket(store, "")
	m.buckets[namespace] = b
	return b, nil
}

func (m *Manager) storeLocked(namespace string) (*Store, error) {
	if store, ok := m.stores[namespace]; ok {
		return store, nil
	}

	var (
		store *Store
		err   error
	)
	if m.inMemory {
		store, err = NewInMemoryStore()
	} else {
		store, err = NewStore(filepath.Join(m.dataDir, namespace))
	}
	if err != nil {
		return nil, fmt.Errorf("create store for namespace %s: %w", namespace, err)
	}

	m.stores[namespace] = store
	return store, nil
}

// Close closes all database stores
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for ns, store := range m.stores {
		if err := store.Close(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("close store for namespace %s: %w", ns, err)
			}
		}
	}
	m.stores = make(map[string]*Store)
	m.buckets = make(map[string]*Bucket)
	return firstErr
}
