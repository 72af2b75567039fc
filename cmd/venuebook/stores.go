package main

import (
	"context"
	"fmt"

	"venuebook/internal/config"
	"venuebook/internal/infrastructure/database"
	"venuebook/internal/infrastructure/flatfile"
	"venuebook/internal/infrastructure/sqlite"
	"venuebook/internal/ports/output"
)

type stores struct {
	events       output.EventRepository
	participants output.ParticipantRepository
	close        func()
}

// openStores builds the repositories for the configured backend.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return &stores{
			events:       flatfile.NewEventRepository(cfg.EventsFile),
			participants: flatfile.NewParticipantRepository(cfg.ParticipantsFile),
			close:        func() {},
		}, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &stores{
			events:       sqlite.NewEventRepository(db),
			participants: sqlite.NewParticipantRepository(db),
			close:        func() { db.Close() },
		}, nil

	case config.BackendPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &stores{
			events:       database.NewEventRepository(pool),
			participants: database.NewParticipantRepository(pool),
			close:        pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
