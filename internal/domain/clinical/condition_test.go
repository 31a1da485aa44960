package clinical

import (
	"testing"
)

func TestLookupCondition(t *testing.T) {
	tests := []struct {
		tag     string
		code    string
		display string
		ok      bool
	}{
		{"diabetes", "73211009", "Diabetes mellitus", true},
		{"hypertension", "38341003", "Hypertension", true},
		{"asthma", "195967001", "Asthma", true},
		{"Diabetes", "", "", false},
		{"gout", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			cc, ok := LookupCondition(tt.tag)
			if ok != tt.ok || cc.Code != tt.code || cc.Display != tt.display {
				t.Errorf("LookupCondition(%q) = %+v, %v", tt.tag, cc, ok)
			}
		})
	}
}

func TestKnownConditions(t *testing.T) {
	for _, tag := range KnownConditions() {
		if _, ok := LookupCondition(tag); !ok {
			t.Errorf("known condition %q does not resolve", tag)
		}
	}
}

func TestNewConditions_OrderAndSkipped(t *testing.T) {
	conds, skipped := NewConditions([]string{"asthma", "gout", "diabetes", "ASTHMA"}, "p1")

	if len(conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conds))
	}
	if conds[0].Code.Coding[0].Code != "195967001" || conds[1].Code.Coding[0].Code != "73211009" {
		t.Errorf("conditions out of input order: %s, %s", conds[0].Code.Text, conds[1].Code.Text)
	}
	if len(skipped) != 2 || skipped[0] != "gout" || skipped[1] != "ASTHMA" {
		t.Errorf("skipped = %v, want [gout ASTHMA]", skipped)
	}
}

func TestNewConditions_Fields(t *testing.T) {
	conds, _ := NewConditions([]string{"hypertension"}, "p1")
	c := conds[0]

	if c.ResourceType != "Condition" || c.GetResourceType() != "Condition" {
		t.Errorf("resourceType = %q", c.ResourceType)
	}
	if c.ClinicalStatus.Coding[0].Code != "active" {
		t.Errorf("clinicalStatus = %+v", c.ClinicalStatus)
	}
	if c.VerificationStatus.Coding[0].Code != "confirmed" {
		t.Errorf("verificationStatus = %+v", c.VerificationStatus)
	}
	if c.Code.Coding[0].System != "http://snomed.info/sct" {
		t.Errorf("code system = %q", c.Code.Coding[0].System)
	}
	if c.Subject.Reference != "Patient/p1" {
		t.Errorf("subject = %q", c.Subject.Reference)
	}
	if c.RecordedDate == "" || c.RecordedDate[len(c.RecordedDate)-1] != 'Z' {
		t.Errorf("recordedDate = %q, want UTC instant", c.RecordedDate)
	}
}

func TestNewConditions_Empty(t *testing.T) {
	conds, skipped := NewConditions(nil, "p1")
	if len(conds) != 0 || len(skipped) != 0 {
		t.Errorf("expected nothing, got %d conditions, %v skipped", len(conds), skipped)
	}
}
