package fhir

import (
	"time"
)

// Resource is implemented by every typed FHIR resource produced by the
// intake pipeline.
type Resource interface {
	GetResourceType() string
	GetID() string
}

// instantLayout renders a FHIR instant in UTC with millisecond precision.
const instantLayout = "2006-01-02T15:04:05.000Z"

// FormatInstant formats t as a FHIR instant (UTC, trailing "Z").
func FormatInstant(t time.Time) string {
	return t.UTC().Format(instantLayout)
}

// Meta is the resource metadata stamp. Resources built by this service are
// never versioned beyond their first revision.
type Meta struct {
	VersionID   string   `json:"versionId,omitempty"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
	Profile     []string `json:"profile,omitempty"`
}

// NewMeta returns a first-revision Meta stamped at t.
func NewMeta(t time.Time) *Meta {
	return &Meta{VersionID: "1", LastUpdated: FormatInstant(t)}
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// SingleCoding wraps one coding in a CodeableConcept.
func SingleCoding(system, code, display string) CodeableConcept {
	return CodeableConcept{Coding: []Coding{{System: system, Code: code, Display: display}}}
}

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

// PatientReference builds a reference to Patient/<id>.
func PatientReference(patientID string) Reference {
	return Reference{Reference: FormatReference("Patient", patientID)}
}

type Identifier struct {
	Use    string           `json:"use,omitempty"`
	Type   *CodeableConcept `json:"type,omitempty"`
	System string           `json:"system,omitempty"`
	Value  string           `json:"value,omitempty"`
}

type HumanName struct {
	Use    string   `json:"use,omitempty"`
	Text   string   `json:"text,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
}

type Address struct {
	Use  string `json:"use,omitempty"`
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}

type ContactPoint struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
	Use    string `json:"use,omitempty"`
}
