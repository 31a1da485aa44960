package intake

// validRaw returns a complete intake submission as decoded from JSON.
func validRaw() map[string]interface{} {
	return map[string]interface{}{
		"first_name":          "Ana",
		"last_name":           "García",
		"email":               "ana@example.com",
		"dob":                 "1990-04-12",
		"phone":               "555-0101",
		"address":             "12 Calle Mayor, Springfield",
		"emergency_contact":   "Luis García",
		"insurance_provider":  "Acme Health",
		"policy_number":       "POL-778",
		"reason_for_visit":    "Annual checkup",
		"medications":         "metformin",
		"allergies":           "penicillin; latex",
		"conditions":          []interface{}{"diabetes", "gout", "hypertension"},
		"language_preference": "en",
	}
}
