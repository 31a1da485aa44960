package clinical

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medintake/intake/internal/platform/fhir"
	"github.com/medintake/intake/pkg/fhirmodels"
)

// AllergyIntolerance records one free-text allergy from the intake form.
type AllergyIntolerance struct {
	ResourceType       string               `json:"resourceType"`
	ID                 string               `json:"id"`
	Meta               *fhir.Meta           `json:"meta,omitempty"`
	ClinicalStatus     fhir.CodeableConcept `json:"clinicalStatus"`
	VerificationStatus fhir.CodeableConcept `json:"verificationStatus"`
	Type               string               `json:"type"`
	Category           []string             `json:"category"`
	Code               fhir.CodeableConcept `json:"code"`
	Patient            fhir.Reference       `json:"patient"`
	RecordedDate       string               `json:"recordedDate,omitempty"`
}

func (a *AllergyIntolerance) GetResourceType() string { return "AllergyIntolerance" }
func (a *AllergyIntolerance) GetID() string           { return a.ID }

// ParseAllergies splits the free-text allergies field into entries.
// Commas and semicolons are interchangeable delimiters, so an allergy name
// that itself contains a comma is split in two.
func ParseAllergies(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(strings.ReplaceAll(text, ",", ";"), ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewAllergies builds one AllergyIntolerance per parsed entry. The allergy
// text is stored verbatim in code.text; no terminology lookup is done.
func NewAllergies(text string, patientID string) []*AllergyIntolerance {
	names := ParseAllergies(text)
	allergies := make([]*AllergyIntolerance, 0, len(names))
	for _, name := range names {
		now := time.Now()
		allergies = append(allergies, &AllergyIntolerance{
			ResourceType: "AllergyIntolerance",
			ID:           uuid.NewString(),
			Meta:         fhir.NewMeta(now),
			ClinicalStatus: fhir.SingleCoding(fhirmodels.SystemAllergyClinical,
				fhirmodels.ClinicalStatusActive, fhirmodels.ClinicalStatusActiveDisplay),
			VerificationStatus: fhir.SingleCoding(fhirmodels.SystemAllergyVerification,
				fhirmodels.VerificationConfirmed, fhirmodels.VerificationConfirmedDisplay),
			Type:         fhirmodels.AllergyTypeAllergy,
			Category:     []string{fhirmodels.AllergyCategoryMedication},
			Code:         fhir.CodeableConcept{Text: name},
			Patient:      fhir.PatientReference(patientID),
			RecordedDate: fhir.FormatInstant(now),
		})
	}
	return allergies
}
