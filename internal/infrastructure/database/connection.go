package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings sizes the pool that reads translation catalogues. Zero values
// keep the pgx defaults.
type PoolSettings struct {
	MaxConns        int32
	ApplicationName string
}

// NewPool opens a pool on dsn and checks that the database answers.
func NewPool(ctx context.Context, dsn string, settings PoolSettings) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(dsn, settings)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	slog.Info("postgres connected",
		slog.String("database", cfg.ConnConfig.Database),
		slog.Int("max_conns", int(cfg.MaxConns)),
		slog.String("application_name", cfg.ConnConfig.RuntimeParams["application_name"]),
	)
	return pool, nil
}

func poolConfig(dsn string, settings PoolSettings) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if settings.MaxConns > 0 {
		cfg.MaxConns = settings.MaxConns
		if cfg.MinConns > cfg.MaxConns {
			cfg.MinConns = cfg.MaxConns
		}
	}
	if settings.ApplicationName != "" {
		cfg.ConnConfig.RuntimeParams["application_name"] = settings.ApplicationName
	}
	return cfg, nil
}
