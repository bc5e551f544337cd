package database

import (
	"context"
	"database/sql"
	"time"
)

// Pool pressure thresholds for the degraded grade.
const (
	poolWaitWarn = 100 * time.Millisecond
	pingWarn     = 250 * time.Millisecond
)

// HealthStatus is the database section of the liveness report.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the database and grades it: unhealthy when unreachable,
// degraded when the ping is slow or connections queue on the pool, healthy
// otherwise.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}
	elapsed := time.Since(start)

	stats := db.Stats()
	status := "healthy"
	if elapsed > pingWarn || stats.WaitDuration > poolWaitWarn {
		status = "degraded"
	}
	return &HealthStatus{
		Status:          status,
		ResponseTime:    elapsed.Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
