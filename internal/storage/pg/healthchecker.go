package pg

import (
	"context"
	"log/slog"
)

// HealthChecker reports PostgreSQL healthy once it answers and the hydro
// schema has been migrated.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{
		pool: pool,
	}
}

func (hc *HealthChecker) Name() string {
	return "postgres"
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("Postgres health check failed", "error", err)
		return false
	}

	var migrated bool
	err := hc.pool.GetConn().QueryRow(ctx, `SELECT to_regclass('catalog_entry') IS NOT NULL`).Scan(&migrated)
	if err != nil || !migrated {
		slog.Warn("Postgres schema check failed", "error", err, "migrated", migrated)
		return false
	}
	return true
}
