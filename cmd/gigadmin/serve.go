package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gigmarket/gigadmin/internal/api"
	"github.com/gigmarket/gigadmin/internal/fixture"
	"github.com/gigmarket/gigadmin/internal/logger"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the fixtures and key-value API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log := logger.L()

			b, err := openBackend(cfg)
			if err != nil {
				return err
			}
			defer b.Close()

			seeder := fixture.NewSeeder(log)
			if cfg.SeedOnStart {
				// A failed seed leaves the dashboard empty but the API usable.
				if _, err := seeder.SeedIfAbsent(b.store); err != nil {
					log.Error("startup seed failed", "error", err)
				}
			}

			server := &http.Server{
				Addr:         cfg.Addr(),
				Handler:      api.NewRouterWithDB(cfg, seeder, b.store, b.manager),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			done := make(chan os.Signal, 1)
			signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

			serveErr := make(chan error, 1)
			go func() {
				log.Info("server listening", "addr", cfg.Addr(), "instance_id", cfg.InstanceID, "backend", cfg.Backend)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
			}()

			select {
			case err := <-serveErr:
				return err
			case <-done:
			}
			log.Info("shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			log.Info("server stopped")
			return nil
		},
	}
}
