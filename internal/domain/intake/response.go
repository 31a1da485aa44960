package intake

import (
	"time"

	"github.com/medintake/intake/internal/platform/fhir"
)

// ResponseTimeLayout formats the envelope timestamp in local wall-clock time.
const ResponseTimeLayout = "2006-01-02 15:04:05"

// Response is the success envelope returned for an accepted submission.
type Response struct {
	Success      bool                   `json:"success"`
	Message      string                 `json:"message"`
	Timestamp    string                 `json:"timestamp"`
	PatientID    string                 `json:"patient_id"`
	FHIRBundle   *fhir.Bundle           `json:"fhir_bundle"`
	ReceivedData map[string]interface{} `json:"received_data"`
}

// NewResponse assembles the envelope. received is echoed as-is, unknown
// fields included.
func NewResponse(now time.Time, lang, patientID string, bundle *fhir.Bundle, received map[string]interface{}) *Response {
	return &Response{
		Success:      true,
		Message:      LocalizedMessage(lang),
		Timestamp:    now.Format(ResponseTimeLayout),
		PatientID:    patientID,
		FHIRBundle:   bundle,
		ReceivedData: received,
	}
}
