package encounter

import (
	"time"

	"github.com/google/uuid"

	"github.com/medintake/intake/internal/platform/fhir"
	"github.com/medintake/intake/pkg/fhirmodels"
)

// DefaultReason is used when the intake record carries no reason for visit.
const DefaultReason = "General consultation"

// EncounterInput carries the intake fields the Encounter needs.
type EncounterInput struct {
	FirstName      string
	LastName       string
	ReasonForVisit string
}

// Encounter is the planned ambulatory visit created for an intake.
type Encounter struct {
	ResourceType string                 `json:"resourceType"`
	ID           string                 `json:"id"`
	Meta         *fhir.Meta             `json:"meta,omitempty"`
	Status       string                 `json:"status"`
	Class        fhir.Coding            `json:"class"`
	Subject      fhir.Reference         `json:"subject"`
	ReasonCode   []fhir.CodeableConcept `json:"reasonCode,omitempty"`
}

func (e *Encounter) GetResourceType() string { return "Encounter" }
func (e *Encounter) GetID() string           { return e.ID }

func NewEncounter(in EncounterInput, patientID string) *Encounter {
	reason := in.ReasonForVisit
	if reason == "" {
		reason = DefaultReason
	}

	return &Encounter{
		ResourceType: "Encounter",
		ID:           uuid.NewString(),
		Meta:         fhir.NewMeta(time.Now()),
		Status:       fhirmodels.EncounterStatusPlanned,
		Class: fhir.Coding{
			System:  fhirmodels.SystemV3ActCode,
			Code:    fhirmodels.EncounterClassAmbulatory,
			Display: fhirmodels.EncounterClassAmbulatoryDisplay,
		},
		Subject: fhir.Reference{
			Reference: fhir.FormatReference("Patient", patientID),
			Display:   in.FirstName + " " + in.LastName,
		},
		ReasonCode: []fhir.CodeableConcept{{Text: reason}},
	}
}
