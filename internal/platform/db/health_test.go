package db

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestPoolStats_Fields(t *testing.T) {
	stats := &PoolStats{
		TotalConns:      10,
		IdleConns:       5,
		AcquiredConns:   5,
		MaxConns:        20,
		AcquireCount:    100,
		AcquireDuration: "1.5s",
		Healthy:         true,
	}

	if stats.TotalConns != 10 {
		t.Errorf("expected TotalConns 10, got %d", stats.TotalConns)
	}
	if stats.MaxConns != 20 {
		t.Errorf("expected MaxConns 20, got %d", stats.MaxConns)
	}
	if stats.AcquireDuration != "1.5s" {
		t.Errorf("expected AcquireDuration '1.5s', got %q", stats.AcquireDuration)
	}
}

func newMockProbe(t *testing.T) (*PoolProbe, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	t.Cleanup(mock.Close)
	probe := &PoolProbe{db: mock, stats: func() *PoolStats { return &PoolStats{MaxConns: 5} }}
	return probe, mock
}

func TestPoolProbe_Healthy(t *testing.T) {
	probe, mock := newMockProbe(t)
	mock.ExpectPing()

	details, err := probe.Check(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats := details.(*PoolStats)
	if !stats.Healthy {
		t.Error("expected Healthy after successful ping")
	}
	if probe.Name() != "audit_db" {
		t.Errorf("expected name audit_db, got %s", probe.Name())
	}
}

func TestPoolProbe_Unhealthy(t *testing.T) {
	probe, mock := newMockProbe(t)
	mock.ExpectPing().WillReturnError(errors.New("no route to host"))

	details, err := probe.Check(context.Background())
	if err == nil {
		t.Fatal("expected ping error")
	}
	stats := details.(*PoolStats)
	if stats.Healthy {
		t.Error("expected Healthy=false after failed ping")
	}
	if stats.MaxConns != 5 {
		t.Errorf("expected stats to be reported on failure, got %+v", stats)
	}
}
