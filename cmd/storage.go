package main

import (
	"context"
	"mangatrade/internal/config"
	"mangatrade/pkg/logger"
	"mangatrade/pkg/storage/postgres"
	"mangatrade/pkg/storage/sqlite"
	"mangatrade/pkg/storage/sqlstore"

	"go.uber.org/zap"
)

// getStorage opens the configured list store and returns it along with a
// cleanup function closing it.
func getStorage(ctx context.Context, cfg *config.Config) (*sqlstore.Store, func()) {
	var (
		store *sqlstore.Store
		err   error
	)

	ctx = logger.WithFields(ctx, zap.String("driver", cfg.Storage.Driver))
	switch cfg.Storage.Driver {
	case config.PostgresDriver:
		store, err = postgres.New(ctx, postgres.Options{
			Username:           cfg.Database.Username,
			Password:           cfg.Database.Password,
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			Database:           cfg.Database.DatabaseName,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
			MaxOpenConnections: cfg.Database.MaxOpenConnections,
			MinConnections:     cfg.Database.MinConnections,
			SslMode:            cfg.Database.SslMode,
		})
	default:
		store, err = sqlite.New(ctx, sqlite.Options{
			Path:               cfg.Storage.SQLite.Path,
			BusyTimeout:        cfg.Storage.SQLite.BusyTimeout,
			MaxOpenConnections: cfg.Storage.SQLite.MaxOpenConnections,
		})
	}
	if err != nil {
		logger.Fatal(ctx, "could not open storage", zap.Error(err))
	}

	return store, func() {
		logger.Info(ctx, "closing storage...")
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}
}
