package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned by Get when no file exists for a key.
var ErrNotFound = errors.New("file not found")

// Store keeps one file per key under baseDir/<namespace>/.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create base dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) namespaceDir(namespace string) string {
	return filepath.Join(s.baseDir, namespace)
}

func (s *Store) filePath(namespace, key string) (string, error) {
	if key == "" || strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid key: %q", key)
	}

	nsDir := s.namespaceDir(namespace)
	fullPath := filepath.Join(nsDir, key+".json")

	if !strings.HasPrefix(fullPath, nsDir) {
		return "", fmt.Errorf("path traversal detected: %s", key)
	}

	return fullPath, nil
}

// Put writes through a temp file and rename so readers never see a
// partially written value.
func (s *Store) Put(namespace, key string, content []byte) error {
	fullPath, err := s.filePath(namespace, key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

func (s *Store) Get(namespace, key string) ([]byte, error) {
	fullPath, err := s.filePath(namespace, key)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	return content, nil
}

// Delete removes the file for key. A missing file is not an error.
func (s *Store) Delete(namespace, key string) error {
	fullPath, err := s.filePath(namespace, key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file: %w", err)
	}

	return nil
}

// List returns the keys in namespace that start with prefix, sorted.
func (s *Store) List(namespace, prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.namespaceDir(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		key := strings.TrimSuffix(name, ".json")
		if prefix == "" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) Exists(namespace, key string) bool {
	fullPath, err := s.filePath(namespace, key)
	if err != nil {
		return false
	}
	_, err = os.Stat(fullPath)
	return err == nil
}

// Namespace returns the key-value view of one namespace directory.
func (s *Store) Namespace(namespace string) *Dir {
	return &Dir{store: s, namespace: namespace}
}

// Dir satisfies the fixture KeyValueStore contract on top of Store.
type Dir struct {
	store     *Store
	namespace string
}

func (d *Dir) Get(key string) ([]byte, bool, error) {
	value, err := d.store.Get(d.namespace, key)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (d *Dir) Set(key string, value []byte) error {
	return d.store.Put(d.namespace, key, value)
}

func (d *Dir) Remove(key string) error {
	return d.store.Delete(d.namespace, key)
}
