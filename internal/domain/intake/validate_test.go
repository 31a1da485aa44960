package intake

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestValidate_Complete(t *testing.T) {
	if err := Validate(validRaw()); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
}

func TestValidate_AllMissingInOrder(t *testing.T) {
	err := Validate(map[string]interface{}{})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !reflect.DeepEqual(verr.Missing, RequiredFields) {
		t.Errorf("missing = %v, want %v", verr.Missing, RequiredFields)
	}
}

func TestValidate_EmptyValues(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		empty bool
	}{
		{"null", nil, true},
		{"empty string", "", true},
		{"false", false, true},
		{"zero", float64(0), true},
		{"empty array", []interface{}{}, true},
		{"empty object", map[string]interface{}{}, true},
		{"zero number", json.Number("0"), true},
		{"zero decimal", json.Number("0.0"), true},
		{"whitespace", "   ", false},
		{"large number", json.Number("12345678901234567890"), false},
		{"true", true, false},
		{"number", float64(42), false},
		{"array", []interface{}{"x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			raw["phone"] = tt.value

			err := Validate(raw)
			if !tt.empty {
				if err != nil {
					t.Errorf("expected phone to count as present, got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || !reflect.DeepEqual(verr.Missing, []string{"phone"}) {
				t.Errorf("expected [phone] missing, got %v", err)
			}
		})
	}
}

func TestValidate_OptionalFieldsNotRequired(t *testing.T) {
	raw := validRaw()
	delete(raw, "medications")
	delete(raw, "allergies")
	delete(raw, "conditions")
	delete(raw, "language_preference")

	if err := Validate(raw); err != nil {
		t.Errorf("expected optional fields to be optional, got %v", err)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Missing: []string{"email", "dob"}}
	if err.Error() != "Missing required fields: email, dob" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
