package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/medintake/intake/internal/platform/fhir"
	"github.com/medintake/intake/pkg/fhirmodels"
)

// PatientInput carries the demographic fields of an intake record.
type PatientInput struct {
	FirstName        string
	LastName         string
	Email            string
	BirthDate        string
	Phone            string
	Address          string
	EmergencyContact string
}

// Patient is the FHIR R4 Patient produced for one intake submission.
type Patient struct {
	ResourceType string              `json:"resourceType"`
	ID           string              `json:"id"`
	Meta         *fhir.Meta          `json:"meta,omitempty"`
	Identifier   []fhir.Identifier   `json:"identifier"`
	Active       bool                `json:"active"`
	Name         []fhir.HumanName    `json:"name"`
	Telecom      []fhir.ContactPoint `json:"telecom,omitempty"`
	BirthDate    string              `json:"birthDate,omitempty"`
	Address      []fhir.Address      `json:"address,omitempty"`
	Contact      []PatientContact    `json:"contact,omitempty"`
}

// PatientContact is a Patient.contact backbone element.
type PatientContact struct {
	Relationship []fhir.CodeableConcept `json:"relationship,omitempty"`
	Name         *fhir.HumanName        `json:"name,omitempty"`
}

func (p *Patient) GetResourceType() string { return "Patient" }
func (p *Patient) GetID() string           { return p.ID }

// NewPatient builds the Patient resource. Its id is freshly generated and is
// the key every sibling resource of the same submission references.
// Telecom, address and contact entries are only emitted for non-empty inputs.
func NewPatient(in PatientInput) *Patient {
	id := uuid.NewString()

	p := &Patient{
		ResourceType: "Patient",
		ID:           id,
		Meta:         fhir.NewMeta(time.Now()),
		Identifier: []fhir.Identifier{
			{System: fhirmodels.SystemPatientID, Value: id},
		},
		Active: true,
		Name: []fhir.HumanName{{
			Use:    fhirmodels.NameUseOfficial,
			Family: in.LastName,
			Given:  []string{in.FirstName},
		}},
		BirthDate: in.BirthDate,
	}

	// Telecom: phone first, then email
	if in.Phone != "" {
		p.Telecom = append(p.Telecom, fhir.ContactPoint{
			System: fhirmodels.ContactSystemPhone,
			Value:  in.Phone,
			Use:    fhirmodels.ContactUseMobile,
		})
	}
	if in.Email != "" {
		p.Telecom = append(p.Telecom, fhir.ContactPoint{
			System: fhirmodels.ContactSystemEmail,
			Value:  in.Email,
		})
	}

	if in.Address != "" {
		p.Address = []fhir.Address{{
			Use:  fhirmodels.AddressUseHome,
			Type: fhirmodels.AddressTypePhysical,
			Text: in.Address,
		}}
	}

	if in.EmergencyContact != "" {
		p.Contact = []PatientContact{{
			Relationship: []fhir.CodeableConcept{
				fhir.SingleCoding(fhirmodels.SystemV2ContactRole,
					fhirmodels.ContactRoleEmergency, fhirmodels.ContactRoleEmergencyDisplay),
			},
			Name: &fhir.HumanName{Text: in.EmergencyContact},
		}}
	}

	return p
}
