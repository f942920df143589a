package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := NewStore(tmpDir)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store
}

func TestStore_PutGet(t *testing.T) {
	store := newTestStore(t)

	namespace := "alice"
	content := []byte(`[{"id":1,"title":"Logo Design"}]`)

	if err := store.Put(namespace, "clientJobs", content); err != nil {
		t.Fatalf("put file: %v", err)
	}

	got, err := store.Get(namespace, "clientJobs")
	if err != nil {
		t.Fatalf("get file: %v", err)
	}

	if string(got) != string(content) {
		t.Errorf("expected %s, got %s", content, got)
	}

	if !store.Exists(namespace, "clientJobs") {
		t.Error("expected key to exist")
	}
}

func TestStore_PutLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)

	store.Put("alice", "workerRatings", []byte("[]"))
	store.Put("alice", "workerRatings", []byte("[1]"))

	entries, err := os.ReadDir(filepath.Join(store.baseDir, "alice"))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file, got %d", len(entries))
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)

	if err := store.Put("alice", "paymentHistory", []byte("[]")); err != nil {
		t.Fatalf("put file: %v", err)
	}

	if err := store.Delete("alice", "paymentHistory"); err != nil {
		t.Fatalf("delete file: %v", err)
	}

	if _, err := store.Get("alice", "paymentHistory"); err == nil {
		t.Error("expected error after delete")
	}

	if err := store.Delete("alice", "paymentHistory"); err != nil {
		t.Errorf("deleting a missing key should be a no-op: %v", err)
	}
}

func TestStore_InvalidKey(t *testing.T) {
	store := newTestStore(t)

	for _, key := range []string{"", "../escape", "a/b"} {
		if err := store.Put("alice", key, []byte("x")); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)

	namespace := "alice"
	store.Put(namespace, "clientJobs", []byte("[]"))
	store.Put(namespace, "gigApplications", []byte("[]"))
	store.Put(namespace, "issuedCredentials", []byte("[]"))

	keys, err := store.List(namespace, "")
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
	if keys[0] != "clientJobs" {
		t.Errorf("expected sorted keys, got %v", keys)
	}

	keys, _ = store.List(namespace, "gig")
	if len(keys) != 1 {
		t.Errorf("expected 1 key with prefix, got %d", len(keys))
	}

	keys, err = store.List("nobody", "")
	if err != nil || len(keys) != 0 {
		t.Errorf("expected empty list for unknown namespace, got %v, %v", keys, err)
	}
}

func TestDir_GetAbsent(t *testing.T) {
	store := newTestStore(t)
	dir := store.Namespace("alice")

	_, ok, err := dir.Get("clientJobs")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected absent key")
	}

	dir.Set("clientJobs", []byte("[]"))
	if _, ok, _ := dir.Get("clientJobs"); !ok {
		t.Error("expected key after set")
	}

	dir.Remove("clientJobs")
	if _, ok, _ := dir.Get("clientJobs"); ok {
		t.Error("expected key removed")
	}
}
