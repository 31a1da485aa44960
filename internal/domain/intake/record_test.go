package intake

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeRecord(t *testing.T) {
	rec, err := DecodeRecord(validRaw())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.FirstName != "Ana" || rec.LastName != "García" || rec.DOB != "1990-04-12" {
		t.Errorf("unexpected demographics %+v", rec)
	}
	if rec.Medications != "metformin" || rec.Allergies != "penicillin; latex" {
		t.Errorf("unexpected free-text fields %q %q", rec.Medications, rec.Allergies)
	}
	if !reflect.DeepEqual(rec.Conditions, []string{"diabetes", "gout", "hypertension"}) {
		t.Errorf("unexpected conditions %v", rec.Conditions)
	}
	if rec.LanguagePreference != "en" {
		t.Errorf("language = %q", rec.LanguagePreference)
	}
}

func TestDecodeRecord_Defaults(t *testing.T) {
	raw := validRaw()
	delete(raw, "language_preference")
	raw["medications"] = nil
	delete(raw, "conditions")

	rec, err := DecodeRecord(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.LanguagePreference != DefaultLanguage {
		t.Errorf("language = %q, want %q", rec.LanguagePreference, DefaultLanguage)
	}
	if rec.Medications != "" || rec.Conditions != nil {
		t.Errorf("expected zero values, got %q %v", rec.Medications, rec.Conditions)
	}
}

func TestDecodeRecord_NonStringLanguageFallsBack(t *testing.T) {
	raw := validRaw()
	raw["language_preference"] = float64(1)

	rec, err := DecodeRecord(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.LanguagePreference != DefaultLanguage {
		t.Errorf("language = %q, want %q", rec.LanguagePreference, DefaultLanguage)
	}
}

func TestDecodeRecord_TypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value interface{}
		want  string
	}{
		{"number as name", "first_name", float64(7), "field first_name: expected string, got float64"},
		{"object as allergies", "allergies", map[string]interface{}{"a": "b"}, "field allergies: expected string"},
		{"string as conditions", "conditions", "diabetes", "field conditions: expected array of strings, got string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			raw[tt.field] = tt.value
			_, err := DecodeRecord(raw)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDecodeRecord_NonStringConditionTags(t *testing.T) {
	raw := validRaw()
	raw["conditions"] = []interface{}{"asthma", json.Number("3"), nil}

	rec, err := DecodeRecord(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(rec.Conditions, []string{"asthma", "3", "<nil>"}) {
		t.Errorf("unexpected conditions %v", rec.Conditions)
	}
}

func TestRecord_Projections(t *testing.T) {
	rec, _ := DecodeRecord(validRaw())

	p := rec.PatientInput()
	if p.BirthDate != "1990-04-12" || p.EmergencyContact != "Luis García" {
		t.Errorf("unexpected patient input %+v", p)
	}
	e := rec.EncounterInput()
	if e.ReasonForVisit != "Annual checkup" || e.FirstName != "Ana" {
		t.Errorf("unexpected encounter input %+v", e)
	}
	c := rec.CoverageInput()
	if c.InsuranceProvider != "Acme Health" || c.PolicyNumber != "POL-778" {
		t.Errorf("unexpected coverage input %+v", c)
	}
}
