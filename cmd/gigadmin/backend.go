package main

import (
	"fmt"

	"github.com/gigmarket/gigadmin/internal/config"
	"github.com/gigmarket/gigadmin/internal/db"
	"github.com/gigmarket/gigadmin/internal/fixture"
	"github.com/gigmarket/gigadmin/internal/storage"
)

// backend is the opened store for the configured namespace. manager is nil
// for the file backend.
type backend struct {
	store   fixture.KeyValueStore
	manager *db.Manager
}

func (b *backend) Close() error {
	if b.manager == nil {
		return nil
	}
	return b.manager.Close()
}

func openBackend(cfg *config.Config) (*backend, error) {
	switch cfg.Backend {
	case config.BackendBadger, config.BackendMemory:
		var m *db.Manager
		if cfg.Backend == config.BackendMemory {
			m = db.NewInMemoryManager()
		} else {
			m = db.NewManager(cfg.DataDir)
		}
		bucket, err := m.Bucket(cfg.Namespace)
		if err != nil {
			m.Close()
			return nil, err
		}
		return &backend{store: bucket, manager: m}, nil

	case config.BackendFile:
		files, err := storage.NewStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return &backend{store: files.Namespace(cfg.Namespace)}, nil
	}
	return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
}
