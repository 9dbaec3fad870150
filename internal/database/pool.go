// Package database owns the PostgreSQL connection pool and schema migrations.
package database

import (
	"context"
	"fmt"

	"github.com/Lixing-Zhang/restaurant-api/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool parses the configuration and creates the shared pool.
// Connections are opened lazily, so an unreachable server is not an error
// here; use Ping to check connectivity.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	return pool, nil
}
