package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gigmarket/gigadmin/internal/config"
	"github.com/gigmarket/gigadmin/internal/db"
	"github.com/gigmarket/gigadmin/internal/fixture"
)

func NewRouter(cfg *config.Config, seeder *fixture.Seeder, store fixture.KeyValueStore) http.Handler {
	return NewRouterWithDB(cfg, seeder, store, nil)
}

// NewRouterWithDB also mounts raw key access when dbManager is non-nil.
func NewRouterWithDB(cfg *config.Config, seeder *fixture.Seeder, store fixture.KeyValueStore, dbManager *db.Manager) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := NewHandlers(cfg, seeder, store)

	// Health & Info
	r.Get("/health", h.Health)
	r.Get("/info", h.Info)

	// Fixtures API
	r.Route("/api/fixtures", func(r chi.Router) {
		r.Get("/", h.FixtureStatus)
		r.Post("/seed", h.Seed)
		r.Post("/reset", h.Reset)
		r.Get("/{key}", h.Collection)
	})

	// Database API
	if dbManager != nil {
		dbHandlers := db.NewHandlers(dbManager)
		r.Route("/api/db/{namespace}", func(r chi.Router) {
			r.Get("/{key}", dbHandlers.Get)
			r.Put("/{key}", dbHandlers.Set)
			r.Delete("/{key}", dbHandlers.Delete)
			r.Get("/", dbHandlers.List)
		})
	}

	return r
}
