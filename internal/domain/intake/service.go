package intake

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/medintake/intake/internal/domain/billing"
	"github.com/medintake/intake/internal/domain/clinical"
	"github.com/medintake/intake/internal/domain/encounter"
	"github.com/medintake/intake/internal/domain/identity"
	"github.com/medintake/intake/internal/platform/fhir"
)

// Submission outcomes, used as metric labels and audit values.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Observer receives per-submission measurements. Implementations must be
// safe for concurrent use.
type Observer interface {
	ObserveSubmission(outcome string, elapsed time.Duration)
	ObserveBundle(resourceTypes []string, skippedConditions int)
}

// Parts holds the resources built for one submission before composition.
type Parts struct {
	Patient    *identity.Patient
	Encounter  *encounter.Encounter
	Coverage   *billing.Coverage
	Conditions []*clinical.Condition
	Allergies  []*clinical.AllergyIntolerance
	Skipped    []string
}

// Compose assembles the collection bundle in its fixed entry order:
// Patient, Encounter, Coverage, then conditions and allergies as built.
func Compose(now time.Time, p *Parts) *fhir.Bundle {
	resources := make([]fhir.Resource, 0, 3+len(p.Conditions)+len(p.Allergies))
	resources = append(resources, p.Patient, p.Encounter, p.Coverage)
	for _, c := range p.Conditions {
		resources = append(resources, c)
	}
	for _, a := range p.Allergies {
		resources = append(resources, a)
	}
	return fhir.NewCollectionBundle(now, resources...)
}

// Build runs every resource builder for a decoded record. The Patient is
// built first so its id can be referenced by the rest.
func Build(rec *Record) (parts *Parts, err error) {
	defer func() {
		if r := recover(); r != nil {
			parts = nil
			err = internalErrorf("building resources: %v", r)
		}
	}()

	patient := identity.NewPatient(rec.PatientInput())
	conditions, skipped := clinical.NewConditions(rec.Conditions, patient.ID)

	return &Parts{
		Patient:    patient,
		Encounter:  encounter.NewEncounter(rec.EncounterInput(), patient.ID),
		Coverage:   billing.NewCoverage(rec.CoverageInput(), patient.ID),
		Conditions: conditions,
		Allergies:  clinical.NewAllergies(rec.Allergies, patient.ID),
		Skipped:    skipped,
	}, nil
}

// Summary describes an accepted submission without any patient data.
type Summary struct {
	Entries           int
	ResourceTypes     []string
	SkippedConditions []string
	Language          string
}

type Service struct {
	observer Observer
}

// NewService creates the intake service. observer may be nil.
func NewService(observer Observer) *Service {
	return &Service{observer: observer}
}

// Submit validates a raw submission and transforms it into the response
// envelope. The returned error is a *ValidationError or an *InternalError;
// on error no response is produced.
func (s *Service) Submit(ctx context.Context, raw map[string]interface{}) (*Response, *Summary, error) {
	start := time.Now()
	log := zerolog.Ctx(ctx)

	if err := Validate(raw); err != nil {
		s.observe(OutcomeRejected, start)
		log.Info().Str("outcome", OutcomeRejected).
			Strs("missing_fields", err.(*ValidationError).Missing).
			Msg("intake rejected")
		return nil, nil, err
	}

	rec, err := DecodeRecord(raw)
	if err != nil {
		s.observe(OutcomeError, start)
		log.Error().Err(err).Str("outcome", OutcomeError).Msg("intake decode failed")
		return nil, nil, &InternalError{Err: err}
	}

	parts, err := Build(rec)
	if err != nil {
		s.observe(OutcomeError, start)
		log.Error().Err(err).Str("outcome", OutcomeError).Msg("intake build failed")
		return nil, nil, err
	}

	bundle := Compose(time.Now(), parts)
	resp := NewResponse(time.Now(), rec.LanguagePreference, parts.Patient.ID, bundle, raw)

	summary := &Summary{
		Entries:           len(bundle.Entry),
		ResourceTypes:     bundle.ResourceTypes(),
		SkippedConditions: parts.Skipped,
		Language:          rec.LanguagePreference,
	}
	if s.observer != nil {
		s.observer.ObserveBundle(summary.ResourceTypes, len(parts.Skipped))
	}
	s.observe(OutcomeAccepted, start)

	log.Info().
		Str("outcome", OutcomeAccepted).
		Int("entries", summary.Entries).
		Int("skipped_conditions", len(parts.Skipped)).
		Str("language", summary.Language).
		Msg("intake accepted")

	return resp, summary, nil
}

func (s *Service) observe(outcome string, start time.Time) {
	if s.observer != nil {
		s.observer.ObserveSubmission(outcome, time.Since(start))
	}
}
