package fhirmodels

// Code systems and fixed value-set codes used when building intake resources.

// Code system URIs.
const (
	SystemPatientID           = "http://medintake.example.org/patient-id"
	SystemV2ContactRole       = "http://terminology.hl7.org/CodeSystem/v2-0131"
	SystemV3ActCode           = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	SystemConditionClinical   = "http://terminology.hl7.org/CodeSystem/condition-clinical"
	SystemConditionVerStatus  = "http://terminology.hl7.org/CodeSystem/condition-ver-status"
	SystemAllergyClinical     = "http://terminology.hl7.org/CodeSystem/allergyintolerance-clinical"
	SystemAllergyVerification = "http://terminology.hl7.org/CodeSystem/allergyintolerance-verification"
	SystemCoverageClass       = "http://terminology.hl7.org/CodeSystem/coverage-class"
	SystemSNOMED              = "http://snomed.info/sct"
)

// EncounterStatus values per FHIR R4.
const (
	EncounterStatusPlanned = "planned"
)

// EncounterClass codes per FHIR R4 v3-ActCode.
const (
	EncounterClassAmbulatory        = "AMB"
	EncounterClassAmbulatoryDisplay = "ambulatory"
)

// Clinical and verification status codes shared by Condition and
// AllergyIntolerance.
const (
	ClinicalStatusActive         = "active"
	ClinicalStatusActiveDisplay  = "Active"
	VerificationConfirmed        = "confirmed"
	VerificationConfirmedDisplay = "Confirmed"
)

// AllergyIntolerance type and category.
const (
	AllergyTypeAllergy        = "allergy"
	AllergyCategoryMedication = "medication"
)

// Coverage codes.
const (
	CoverageStatusActive       = "active"
	CoverageTypeHIP            = "HIP"
	CoverageTypeHIPDisplay     = "health insurance plan policy"
	CoverageClassPolicy        = "policy"
	CoverageClassPolicyDisplay = "Policy"
)

// Patient contact relationship.
const (
	ContactRoleEmergency        = "C"
	ContactRoleEmergencyDisplay = "Emergency Contact"
)

// ContactPoint, Address and HumanName codes.
const (
	ContactSystemPhone  = "phone"
	ContactSystemEmail  = "email"
	ContactUseMobile    = "mobile"
	AddressUseHome      = "home"
	AddressTypePhysical = "physical"
	NameUseOfficial     = "official"
)
