package db

import "errors"

// Bucket binds a Store to one namespace and satisfies the fixture
// KeyValueStore contract.
type Bucket struct {
	store     *Store
	namespace string
}

func NewBucket(store *Store, namespace string) *Bucket {
	return &Bucket{store: store, namespace: namespace}
}

func (b *Bucket) Namespace() string {
	return b.namespace
}

func (b *Bucket) Get(key string) ([]byte, bool, error) {
	value, err := b.store.Get(b.namespace, key)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (b *Bucket) Set(key string, value []byte) error {
	return b.store.Set(b.namespace, key, value)
}

func (b *Bucket) SetIfAbsent(key string, value []byte) (bool, error) {
	return b.store.SetIfAbsent(b.namespace, key, value)
}

func (b *Bucket) Remove(key string) error {
	return b.store.Delete(b.namespace, key)
}

func (b *Bucket) Keys(prefix string) ([]string, error) {
	return b.store.List(b.namespace, prefix, 0)
}
