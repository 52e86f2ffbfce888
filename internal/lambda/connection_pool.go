package lambda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	poolOnce sync.Once
	pool     *pgxpool.Pool
	poolErr  error
)

// GetConnectionPool returns the connection pool shared across invocations of a
// warm Lambda container. Only the first call dials; later calls return the
// same pool or the same error.
func GetConnectionPool(ctx context.Context, databaseURL string, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolOnce.Do(func() {
		config, err := pgxpool.ParseConfig(databaseURL)
		if err != nil {
			poolErr = fmt.Errorf("failed to parse database URL: %w", err)
			return
		}

		// RDS Proxy pools upstream, keep the local pool small
		config.MaxConns = 2
		config.MinConns = 1
		config.MaxConnIdleTime = 0
		config.MaxConnLifetime = 0
		// pgx panics on a zero health check period
		config.HealthCheckPeriod = 30 * time.Second

		pool, poolErr = pgxpool.NewWithConfig(ctx, config)
		if poolErr != nil {
			poolErr = fmt.Errorf("failed to create connection pool: %w", poolErr)
			return
		}

		if err := pool.Ping(ctx); err != nil {
			poolErr = fmt.Errorf("failed to ping database: %w", err)
			pool.Close()
			pool = nil
			return
		}

		if logger != nil {
			logger.Info("Lambda connection pool initialized",
				zap.Int("max_connections", int(config.MaxConns)),
				zap.Int("min_connections", int(config.MinConns)),
			)
		}
	})

	return pool, poolErr
}

// CloseConnectionPool closes the pool and allows it to be created again
func CloseConnectionPool() {
	if pool != nil {
		pool.Close()
		pool = nil
	}
	poolErr = nil
	poolOnce = sync.Once{}
}
