package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gigmarket/gigadmin/internal/config"
	"github.com/gigmarket/gigadmin/internal/fixture"
)

var startTime = time.Now()

type Handlers struct {
	cfg    *config.Config
	seeder *fixture.Seeder
	store  fixture.KeyValueStore
}

func NewHandlers(cfg *config.Config, seeder *fixture.Seeder, store fixture.KeyValueStore) *Handlers {
	return &Handlers{cfg: cfg, seeder: seeder, store: store}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handlers) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"instance_id":    h.cfg.InstanceID,
		"backend":        h.cfg.Backend,
		"namespace":      h.cfg.Namespace,
		"version":        "0.1.0",
		"uptime_seconds": int(time.Since(startTime).Seconds()),
	})
}

type StatusResponse struct {
	Collections []fixture.KeyStatus `json:"collections"`
	Seeded      int                 `json:"seeded"`
}

func (h *Handlers) FixtureStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.seeder.Status(h.store)
	if err != nil {
		writeError(w, err)
		return
	}

	seeded := 0
	for _, s := range statuses {
		if s.Present {
			seeded++
		}
	}
	writeJSON(w, http.StatusOK, StatusResponse{Collections: statuses, Seeded: seeded})
}

func (h *Handlers) Seed(w http.ResponseWriter, r *http.Request) {
	report, err := h.seeder.SeedIfAbsent(h.store)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if report.Writes() > 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, report)
}

func (h *Handlers) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.seeder.Reset(h.store); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Collection returns the stored bytes of one canonical collection as-is.
func (h *Handlers) Collection(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !fixture.IsKey(key) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown collection"})
		return
	}

	value, ok, err := h.store.Get(key)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "collection not seeded"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(value)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if fixture.IsKind(err, fixture.KindIO) {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
