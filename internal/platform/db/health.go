package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
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

// PoolProbe reports the audit database on the service health endpoint.
type PoolProbe struct {
	db    interface{ Ping(context.Context) error }
	stats func() *PoolStats
}

func NewPoolProbe(pool *pgxpool.Pool) *PoolProbe {
	return &PoolProbe{db: pool, stats: func() *PoolStats { return GetPoolStats(pool) }}
}

func (p *PoolProbe) Name() string { return "audit_db" }

// Check pings the database and returns the pool stats either way.
func (p *PoolProbe) Check(ctx context.Context) (interface{}, error) {
	err := p.db.Ping(ctx)
	stats := p.stats()
	if err != nil {
		stats.Healthy = false
		return stats, err
	}
	stats.Healthy = true
	return stats, nil
}
