package intake

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medintake/intake/internal/platform/fhir"
	"github.com/medintake/intake/internal/platform/middleware"
)

// APIVersion is reported by the root descriptor.
const APIVersion = "1.0.0"

// HealthProbe reports on an optional dependency for GET /health.
type HealthProbe interface {
	Name() string
	Check(ctx context.Context) (interface{}, error)
}

type Handler struct {
	svc    *Service
	logger zerolog.Logger
	probes []HealthProbe
}

func NewHandler(svc *Service, logger zerolog.Logger, probes ...HealthProbe) *Handler {
	return &Handler{svc: svc, logger: logger, probes: probes}
}

// RegisterRoutes mounts the intake routes. submitMW wraps only POST /submit.
func (h *Handler) RegisterRoutes(e *echo.Echo, submitMW ...echo.MiddlewareFunc) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.POST("/submit", h.Submit, submitMW...)
}

// Root describes the service and its endpoints.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "Healthcare API Active - FHIR Enabled",
		"version": APIVersion,
		"endpoints": map[string]string{
			"submit": "/submit (POST)",
		},
	})
}

// Health is a liveness check. Optional dependencies are reported but a
// failing one only degrades the status; intake itself needs none of them.
func (h *Handler) Health(c echo.Context) error {
	body := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(ResponseTimeLayout),
	}
	for _, p := range h.probes {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		details, err := p.Check(ctx)
		cancel()
		if err != nil {
			body["status"] = "degraded"
			body[p.Name()] = map[string]interface{}{"error": err.Error(), "details": details}
			continue
		}
		body[p.Name()] = details
	}
	return c.JSON(http.StatusOK, body)
}

// Submit accepts an intake record and returns the FHIR bundle envelope.
func (h *Handler) Submit(c echo.Context) error {
	raw, err := DecodeSubmission(c.Request().Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		c.Set(middleware.AuditOutcomeKey, OutcomeRejected)
		return c.JSON(http.StatusBadRequest, fhir.StructureOutcome(err.Error()))
	}

	ctx := c.Request().Context()
	logger := h.logger
	if rid, ok := c.Get(middleware.RequestIDKey).(string); ok {
		logger = logger.With().Str("request_id", rid).Logger()
	}
	ctx = logger.WithContext(ctx)

	resp, summary, err := h.svc.Submit(ctx, raw)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.Set(middleware.AuditOutcomeKey, OutcomeRejected)
			c.Set(middleware.AuditMissingFieldsKey, verr.Missing)
			return c.JSON(http.StatusBadRequest, fhir.MissingFieldsOutcome(verr.Missing))
		}
		c.Set(middleware.AuditOutcomeKey, OutcomeError)
		return c.JSON(http.StatusInternalServerError, fhir.InternalErrorOutcome(err.Error()))
	}

	c.Set(middleware.AuditOutcomeKey, OutcomeAccepted)
	c.Set(middleware.AuditEntriesKey, summary.Entries)
	c.Set(middleware.AuditSkippedKey, len(summary.SkippedConditions))
	c.Set(middleware.AuditLanguageKey, summary.Language)
	return c.JSON(http.StatusOK, resp)
}
