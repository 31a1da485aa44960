package intake

import (
	"fmt"

	"github.com/medintake/intake/internal/domain/billing"
	"github.com/medintake/intake/internal/domain/encounter"
	"github.com/medintake/intake/internal/domain/identity"
)

// DefaultLanguage is assumed when language_preference is absent.
const DefaultLanguage = "en"

// Record is the typed view of an intake submission. The raw submission is
// kept separately so it can be echoed back untouched.
type Record struct {
	FirstName          string
	LastName           string
	Email              string
	DOB                string
	Phone              string
	Address            string
	EmergencyContact   string
	InsuranceProvider  string
	PolicyNumber       string
	ReasonForVisit     string
	Medications        string
	Allergies          string
	Conditions         []string
	LanguagePreference string
}

// DecodeRecord converts a raw submission into a Record. Absent and null
// fields decode to their zero value. A string field holding another JSON
// type, or a conditions value that is not an array, is malformed input.
// Non-string condition tags are kept as unmatched placeholders so they are
// reported as skipped rather than rejected.
func DecodeRecord(raw map[string]interface{}) (*Record, error) {
	d := decoder{raw: raw}
	r := &Record{
		FirstName:         d.str("first_name"),
		LastName:          d.str("last_name"),
		Email:             d.str("email"),
		DOB:               d.str("dob"),
		Phone:             d.str("phone"),
		Address:           d.str("address"),
		EmergencyContact:  d.str("emergency_contact"),
		InsuranceProvider: d.str("insurance_provider"),
		PolicyNumber:      d.str("policy_number"),
		ReasonForVisit:    d.str("reason_for_visit"),
		Medications:       d.str("medications"),
		Allergies:         d.str("allergies"),
		Conditions:        d.strList("conditions"),
	}
	if d.err != nil {
		return nil, d.err
	}

	r.LanguagePreference = DefaultLanguage
	if lang, ok := raw["language_preference"].(string); ok {
		r.LanguagePreference = lang
	}
	return r, nil
}

// PatientInput projects the demographic fields.
func (r *Record) PatientInput() identity.PatientInput {
	return identity.PatientInput{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		BirthDate:        r.DOB,
		Phone:            r.Phone,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
	}
}

// EncounterInput projects the visit fields.
func (r *Record) EncounterInput() encounter.EncounterInput {
	return encounter.EncounterInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		ReasonForVisit: r.ReasonForVisit,
	}
}

// CoverageInput projects the insurance fields.
func (r *Record) CoverageInput() billing.CoverageInput {
	return billing.CoverageInput{
		InsuranceProvider: r.InsuranceProvider,
		PolicyNumber:      r.PolicyNumber,
	}
}

// decoder keeps the first type error seen while reading fields.
type decoder struct {
	raw map[string]interface{}
	err error
}

func (d *decoder) str(key string) string {
	v, ok := d.raw[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(key, "string", v)
		return ""
	}
	return s
}

func (d *decoder) strList(key string) []string {
	v, ok := d.raw[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		d.fail(key, "array of strings", v)
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			s = fmt.Sprintf("%v", item)
		}
		out = append(out, s)
	}
	return out
}

func (d *decoder) fail(key, want string, got interface{}) {
	if d.err == nil {
		d.err = fmt.Errorf("field %s: expected %s, got %T", key, want, got)
	}
}
