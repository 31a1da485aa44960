package intake

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/fhir/go/fhirversion"
	"github.com/google/fhir/go/jsonformat"
)

// The emitted bundle must parse as R4 with the reference FHIR protos.
func TestSubmit_BundleIsValidR4(t *testing.T) {
	um, err := jsonformat.NewUnmarshaller("UTC", fhirversion.R4)
	if err != nil {
		t.Fatalf("NewUnmarshaller: %v", err)
	}

	resp, _, err := NewService(nil).Submit(context.Background(), validRaw())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(resp.FHIRBundle)
	if err != nil {
		t.Fatalf("marshal bundle: %v", err)
	}
	if _, err := um.Unmarshal(data); err != nil {
		t.Fatalf("bundle is not valid R4: %v\n%s", err, data)
	}

	for i, entry := range resp.FHIRBundle.Entry {
		data, err := json.Marshal(entry.Resource)
		if err != nil {
			t.Fatalf("marshal entry %d: %v", i, err)
		}
		if _, err := um.Unmarshal(data); err != nil {
			t.Errorf("entry %d (%s) is not valid R4: %v", i, entry.Resource.GetResourceType(), err)
		}
	}
}
