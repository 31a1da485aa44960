package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Context keys the intake handler sets for the audit middleware.
const (
	AuditOutcomeKey       = "audit_outcome"
	AuditEntriesKey       = "audit_bundle_entries"
	AuditSkippedKey       = "audit_skipped_conditions"
	AuditMissingFieldsKey = "audit_missing_fields"
	AuditLanguageKey      = "audit_language"
)

// AuditEntry describes one intake submission. It carries no
// patient identifiers or record content.
type AuditEntry struct {
	RequestID         string
	Method            string
	Path              string
	StatusCode        int
	Outcome           string
	BundleEntries     int
	SkippedConditions int
	MissingFields     []string
	Language          string
	Timestamp         time.Time
}

// AuditRecorder persists audit entries.
type AuditRecorder interface {
	RecordSubmission(ctx context.Context, entry AuditEntry) error
}

// AuditRecorderFunc is a function adapter for AuditRecorder.
type AuditRecorderFunc func(ctx context.Context, entry AuditEntry) error

func (f AuditRecorderFunc) RecordSubmission(ctx context.Context, entry AuditEntry) error {
	return f(ctx, entry)
}

// Audit records every request it wraps. It is mounted on the submit route
// only. Recorder failures are logged and never fail the request.
func Audit(logger zerolog.Logger, recorders ...AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			req := c.Request()
			entry := AuditEntry{
				Method:     req.Method,
				Path:       req.URL.Path,
				StatusCode: statusOf(c, err),
				Timestamp:  time.Now().UTC(),
			}
			entry.RequestID, _ = c.Get(RequestIDKey).(string)
			entry.Outcome, _ = c.Get(AuditOutcomeKey).(string)
			entry.BundleEntries, _ = c.Get(AuditEntriesKey).(int)
			entry.SkippedConditions, _ = c.Get(AuditSkippedKey).(int)
			entry.MissingFields, _ = c.Get(AuditMissingFieldsKey).([]string)
			entry.Language, _ = c.Get(AuditLanguageKey).(string)
			if entry.Outcome == "" {
				entry.Outcome = outcomeForStatus(entry.StatusCode)
			}

			for _, r := range recorders {
				if r == nil {
					continue
				}
				if recErr := r.RecordSubmission(req.Context(), entry); recErr != nil {
					logger.Error().Err(recErr).
						Str("request_id", entry.RequestID).
						Msg("failed to record audit entry")
				}
			}

			logger.Info().
				Str("type", "intake_audit").
				Str("request_id", entry.RequestID).
				Str("method", entry.Method).
				Str("path", entry.Path).
				Int("status", entry.StatusCode).
				Str("outcome", entry.Outcome).
				Int("bundle_entries", entry.BundleEntries).
				Int("skipped_conditions", entry.SkippedConditions).
				Strs("missing_fields", entry.MissingFields).
				Str("language", entry.Language).
				Msg("intake_submission")

			return err
		}
	}
}

// statusOf reports the status the client will see, including errors that
// echo has not written yet.
func statusOf(c echo.Context, err error) int {
	var he *echo.HTTPError
	if err != nil && errors.As(err, &he) {
		return he.Code
	}
	if err != nil && !c.Response().Committed {
		return http.StatusInternalServerError
	}
	return c.Response().Status
}

func outcomeForStatus(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "rejected"
	default:
		return "accepted"
	}
}
