package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"venuebook/internal/domain"
)

// maxConns caps the pool. The console runs one operation at a time.
const maxConns = 4

// NewPool opens a pgx pool for dsn and checks the server answers. Failures
// come back as store errors so the console reports them like file errors.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, &domain.StoreError{Op: "parse dsn", Err: err}
	}
	if cfg.MaxConns > maxConns {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, &domain.StoreError{Op: "connect", Err: err}
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &domain.StoreError{Op: "ping", Err: err}
	}
	log.WithFields(log.Fields{
		"host":     cfg.ConnConfig.Host,
		"database": cfg.ConnConfig.Database,
		"maxConns": cfg.MaxConns,
	}).Info("✅ PostgreSQL database connected")
	return pool, nil
}
