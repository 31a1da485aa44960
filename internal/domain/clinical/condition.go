package clinical

import (
	"time"

	"github.com/google/uuid"

	"github.com/medintake/intake/internal/platform/fhir"
	"github.com/medintake/intake/pkg/fhirmodels"
)

// ConditionCode is one row of the intake condition table.
type ConditionCode struct {
	Code    string
	Display string
}

// LookupCondition resolves an intake condition tag to its SNOMED CT coding.
// Matching is exact and case-sensitive; the table is closed.
func LookupCondition(tag string) (ConditionCode, bool) {
	switch tag {
	case "diabetes":
		return ConditionCode{Code: "73211009", Display: "Diabetes mellitus"}, true
	case "hypertension":
		return ConditionCode{Code: "38341003", Display: "Hypertension"}, true
	case "asthma":
		return ConditionCode{Code: "195967001", Display: "Asthma"}, true
	}
	return ConditionCode{}, false
}

// KnownConditions lists the recognized condition tags.
func KnownConditions() []string {
	return []string{"diabetes", "hypertension", "asthma"}
}

// Condition is a problem-list entry reported on the intake form.
type Condition struct {
	ResourceType       string               `json:"resourceType"`
	ID                 string               `json:"id"`
	Meta               *fhir.Meta           `json:"meta,omitempty"`
	ClinicalStatus     fhir.CodeableConcept `json:"clinicalStatus"`
	VerificationStatus fhir.CodeableConcept `json:"verificationStatus"`
	Code               fhir.CodeableConcept `json:"code"`
	Subject            fhir.Reference       `json:"subject"`
	RecordedDate       string               `json:"recordedDate,omitempty"`
}

func (c *Condition) GetResourceType() string { return "Condition" }
func (c *Condition) GetID() string           { return c.ID }

// NewConditions builds one Condition per recognized tag, in input order.
// Unrecognized tags produce no resource and no error; they are returned in
// skipped so callers can surface them (a misspelled tag vanishes otherwise).
func NewConditions(tags []string, patientID string) (conditions []*Condition, skipped []string) {
	for _, tag := range tags {
		cc, ok := LookupCondition(tag)
		if !ok {
			skipped = append(skipped, tag)
			continue
		}
		now := time.Now()
		conditions = append(conditions, &Condition{
			ResourceType: "Condition",
			ID:           uuid.NewString(),
			Meta:         fhir.NewMeta(now),
			ClinicalStatus: fhir.SingleCoding(fhirmodels.SystemConditionClinical,
				fhirmodels.ClinicalStatusActive, fhirmodels.ClinicalStatusActiveDisplay),
			VerificationStatus: fhir.SingleCoding(fhirmodels.SystemConditionVerStatus,
				fhirmodels.VerificationConfirmed, fhirmodels.VerificationConfirmedDisplay),
			Code: fhir.CodeableConcept{
				Coding: []fhir.Coding{{
					System:  fhirmodels.SystemSNOMED,
					Code:    cc.Code,
					Display: cc.Display,
				}},
				Text: cc.Display,
			},
			Subject:      fhir.PatientReference(patientID),
			RecordedDate: fhir.FormatInstant(now),
		})
	}
	return conditions, skipped
}
