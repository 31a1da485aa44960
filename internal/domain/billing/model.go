package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/medintake/intake/internal/platform/fhir"
	"github.com/medintake/intake/pkg/fhirmodels"
)

// DefaultPayor names the payor when the intake record has no provider.
const DefaultPayor = "Unknown Insurance"

// CoverageInput carries the insurance fields of an intake record.
type CoverageInput struct {
	InsuranceProvider string
	PolicyNumber      string
}

// Coverage maps the patient's insurance policy. The patient is both
// subscriber and beneficiary; a distinct policyholder is not modelled.
type Coverage struct {
	ResourceType string               `json:"resourceType"`
	ID           string               `json:"id"`
	Meta         *fhir.Meta           `json:"meta,omitempty"`
	Status       string               `json:"status"`
	Type         fhir.CodeableConcept `json:"type"`
	Subscriber   fhir.Reference       `json:"subscriber"`
	Beneficiary  fhir.Reference       `json:"beneficiary"`
	Payor        []fhir.Reference     `json:"payor"`
	Class        []CoverageClass      `json:"class,omitempty"`
}

// CoverageClass is a Coverage.class backbone element.
type CoverageClass struct {
	Type  fhir.CodeableConcept `json:"type"`
	Value string               `json:"value"`
	Name  string               `json:"name,omitempty"`
}

func (c *Coverage) GetResourceType() string { return "Coverage" }
func (c *Coverage) GetID() string           { return c.ID }

func NewCoverage(in CoverageInput, patientID string) *Coverage {
	payor := in.InsuranceProvider
	if payor == "" {
		payor = DefaultPayor
	}

	return &Coverage{
		ResourceType: "Coverage",
		ID:           uuid.NewString(),
		Meta:         fhir.NewMeta(time.Now()),
		Status:       fhirmodels.CoverageStatusActive,
		Type: fhir.SingleCoding(fhirmodels.SystemV3ActCode,
			fhirmodels.CoverageTypeHIP, fhirmodels.CoverageTypeHIPDisplay),
		Subscriber:  fhir.PatientReference(patientID),
		Beneficiary: fhir.PatientReference(patientID),
		Payor:       []fhir.Reference{{Display: payor}},
		Class: []CoverageClass{{
			Type: fhir.SingleCoding(fhirmodels.SystemCoverageClass,
				fhirmodels.CoverageClassPolicy, fhirmodels.CoverageClassPolicyDisplay),
			Value: in.PolicyNumber,
			Name:  in.InsuranceProvider,
		}},
	}
}
