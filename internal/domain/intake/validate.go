package intake

import (
	"encoding/json"
	"strings"
)

// RequiredFields lists the mandatory intake fields in reporting order.
var RequiredFields = []string{
	"first_name",
	"last_name",
	"email",
	"dob",
	"phone",
	"address",
	"emergency_contact",
	"insurance_provider",
	"policy_number",
	"reason_for_visit",
}

// ValidationError reports every mandatory field that was absent or empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks the raw submission for mandatory fields. It collects all
// missing fields rather than stopping at the first one. A whitespace-only
// string counts as present.
func Validate(raw map[string]interface{}) error {
	var missing []string
	for _, field := range RequiredFields {
		if isEmpty(raw[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// isEmpty mirrors JSON falsiness: null, "", false, 0 and empty containers.
func isEmpty(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	case []interface{}:
		return len(val) == 0
	case map[string]interface{}:
		return len(val) == 0
	}
	return false
}
