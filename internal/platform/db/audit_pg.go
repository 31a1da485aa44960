package db

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/medintake/intake/internal/platform/middleware"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// AuditRepoPG stores intake audit entries in the intake_audit table.
type AuditRepoPG struct {
	db execer
}

func NewAuditRepoPG(db execer) *AuditRepoPG {
	return &AuditRepoPG{db: db}
}

func (r *AuditRepoPG) RecordSubmission(ctx context.Context, e middleware.AuditEntry) error {
	missing := e.MissingFields
	if missing == nil {
		missing = []string{}
	}
	_, err := r.db.Exec(ctx, `INSERT INTO intake_audit
		(request_id, occurred_at, method, path, status_code, outcome,
		 bundle_entries, skipped_conditions, missing_fields, language)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		truncate(e.RequestID, 128), e.Timestamp, e.Method, truncate(e.Path, 255),
		e.StatusCode, e.Outcome, e.BundleEntries, e.SkippedConditions,
		missing, truncate(e.Language, 16),
	)
	if err != nil {
		return fmt.Errorf("insert intake audit: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
