package db

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	// DefaultNamespace is used when a request carries no namespace.
	DefaultNamespace = "default"
	// MaxValueBytes caps the body accepted by Set.
	MaxValueBytes = 1 << 20
)

type Handlers struct {
	manager *Manager
}

func NewHandlers(manager *Manager) *Handlers {
	return &Handlers{manager: manager}
}

type GetResponse struct {
	Key    string          `json:"key"`
	Value  json.RawMessage `json:"value"`
	Exists bool            `json:"exists"`
}

func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	bucket, err := h.manager.Bucket(namespaceFromPath(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	key := chi.URLParam(r, "key")
	value, ok, err := bucket.Get(key)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, GetResponse{Key: key, Value: json.RawMessage("null")})
		return
	}

	// Values written by the dashboard are not guaranteed to be JSON.
	if !json.Valid(value) {
		quoted, _ := json.Marshal(string(value))
		value = quoted
	}

	writeJSON(w, http.StatusOK, GetResponse{
		Key:    key,
		Value:  value,
		Exists: true,
	})
}

// Set stores the raw request body under the key.
func (h *Handlers) Set(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxValueBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "value too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read body"})
		return
	}

	bucket, err := h.manager.Bucket(namespaceFromPath(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := bucket.Set(chi.URLParam(r, "key"), body); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	bucket, err := h.manager.Bucket(namespaceFromPath(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := bucket.Remove(chi.URLParam(r, "key")); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ListResponse struct {
	Keys  []string `json:"keys"`
	Count int      `json:"count"`
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	limit := 100
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	store, err := h.manager.GetStore(namespaceFromPath(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	keys, err := store.List("", prefix, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if keys == nil {
		keys = []string{}
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Keys:  keys,
		Count: len(keys),
	})
}

func namespaceFromPath(r *http.Request) string {
	namespace := chi.URLParam(r, "namespace")
	if namespace == "" {
		return DefaultNamespace
	}
	return namespace
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
