package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// PoolStats represents database connection pool statistics.
type PoolStats struct {
	TotalConns      int32  `json:"total_conns"`
	IdleConns       int32  `json:"idle_conns"`
	AcquiredConns   int32  `json:"acquired_conns"`
	MaxConns        int32  `json:"max_conns"`
	AcquireCount    int64  `json:"acquire_count"`
	AcquireDuration string `json:"acquire_duration"`
	Healthy         bool   `json:"healthy"`
}

// GetPoolStats returns connection pool statistics.
func GetPoolStats(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:      stat.TotalConns(),
		IdleConns:       stat.IdleConns(),
		AcquiredConns:   stat.AcquiredConns(),
		MaxConns:        stat.MaxConns(),
		AcquireCount:    stat.AcquireCount(),
		AcquireDuration: stat.AcquireDuration().String(),
		Healthy:         stat.TotalConns() > 0,
	}
}

// healthPayload builds the health response body. The shape mirrors the
// memory-backend health response (status, storage, version) and adds pool
// statistics.
func healthPayload(stats *PoolStats, version string, healthy bool) map[string]interface{} {
	status := "ok"
	if !healthy {
		status = "unhealthy"
	}
	return map[string]interface{}{
		"status":  status,
		"storage": "postgres",
		"version": version,
		"pool":    stats,
	}
}

// HealthHandler returns the health check endpoint for a postgres-backed
// deployment.
func HealthHandler(pool *pgxpool.Pool, version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		err := pool.Ping(ctx)
		stats := GetPoolStats(pool)

		if err != nil {
			stats.Healthy = false
			return c.JSON(http.StatusServiceUnavailable, healthPayload(stats, version, false))
		}

		return c.JSON(http.StatusOK, healthPayload(stats, version, true))
	}
}
