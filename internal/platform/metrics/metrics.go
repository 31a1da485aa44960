package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IntakeMetrics exposes counters/histograms for intake submissions.
// A nil *IntakeMetrics is valid and records nothing.
type IntakeMetrics struct {
	submissionsTotal  *prometheus.CounterVec
	submissionLatency *prometheus.HistogramVec
	resourcesTotal    *prometheus.CounterVec
	skippedTotal      prometheus.Counter
	requestsTotal     *prometheus.CounterVec
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medintake",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Intake submissions by outcome",
		}, []string{"outcome"}),
		submissionLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medintake",
			Subsystem: "intake",
			Name:      "submission_duration_seconds",
			Help:      "Time spent validating and transforming a submission",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"outcome"}),
		resourcesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medintake",
			Subsystem: "fhir",
			Name:      "resources_built_total",
			Help:      "FHIR resources emitted in intake bundles",
		}, []string{"resource_type"}),
		skippedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "medintake",
			Subsystem: "intake",
			Name:      "skipped_conditions_total",
			Help:      "Condition tags dropped because they are not in the code table",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medintake",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.submissionLatency, m.resourcesTotal, m.skippedTotal, m.requestsTotal)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
	m.submissionLatency.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *IntakeMetrics) ObserveBundle(resourceTypes []string, skippedConditions int) {
	if m == nil {
		return
	}
	for _, rt := range resourceTypes {
		m.resourcesTotal.WithLabelValues(rt).Inc()
	}
	m.skippedTotal.Add(float64(skippedConditions))
}

// Middleware counts requests by route template, so ids in paths never become
// label values. Unmatched routes are reported as "unmatched".
func (m *IntakeMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if m == nil {
				return err
			}

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.requestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			return err
		}
	}
}

// Handler serves the Prometheus exposition for g.
func Handler(g prometheus.Gatherer) echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
