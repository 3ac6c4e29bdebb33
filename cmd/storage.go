package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-FacilityBooking/internal/config"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/boltstore"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/file"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/postgres"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

// openBackend выбирает хранилище по storage.driver.
// Возвращаемая функция закрывает ресурсы бэкенда.
func openBackend(ctx context.Context, cfg *config.Config, rules domain.Rules, log *logger.Logger) (state.Backend, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverFile:
		log.Info("Using file storage at %s", cfg.Storage.Path)
		return file.NewBackend(cfg.Storage.Path, rules), noop, nil

	case config.DriverBolt:
		b, err := boltstore.Open(cfg.Storage.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open bolt %s: %w", cfg.Storage.Path, err)
		}
		log.Info("Using bolt storage at %s", cfg.Storage.Path)
		return b, func() {
			if err := b.Close(); err != nil {
				log.Error("Failed to close bolt storage: %v", err)
			}
		}, nil

	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("connect to database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}

		b := postgres.NewBackend(db)
		if err := b.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("ensure schema: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return b, func() { db.Close() }, nil

	case config.DriverMemory:
		log.Warn("Using in-memory storage, state is lost on restart")
		return state.NewMemoryBackend(nil), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
