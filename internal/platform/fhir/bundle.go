package fhir

import (
	"fmt"
	"time"
)

// BundleTypeCollection is the only bundle type this service emits.
const BundleTypeCollection = "collection"

// Bundle represents a FHIR Bundle resource.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type"`
	Timestamp    string        `json:"timestamp,omitempty"`
	Entry        []BundleEntry `json:"entry"`
}

// BundleEntry holds one resource. Resource is kept typed so callers can
// inspect entries without a JSON round-trip.
type BundleEntry struct {
	FullURL  string   `json:"fullUrl,omitempty"`
	Resource Resource `json:"resource"`
}

// NewCollectionBundle creates a collection Bundle whose entries keep the order
// of resources exactly as given. The bundle timestamp is taken from now.
func NewCollectionBundle(now time.Time, resources ...Resource) *Bundle {
	entries := make([]BundleEntry, 0, len(resources))
	for _, r := range resources {
		entries = append(entries, BundleEntry{
			FullURL:  "urn:uuid:" + r.GetID(),
			Resource: r,
		})
	}
	return &Bundle{
		ResourceType: "Bundle",
		Type:         BundleTypeCollection,
		Timestamp:    FormatInstant(now),
		Entry:        entries,
	}
}

// ResourceTypes lists the resourceType of every entry, in order.
func (b *Bundle) ResourceTypes() []string {
	out := make([]string, len(b.Entry))
	for i, e := range b.Entry {
		out[i] = e.Resource.GetResourceType()
	}
	return out
}

// FormatReference creates a FHIR reference string.
func FormatReference(resourceType, id string) string {
	return fmt.Sprintf("%s/%s", resourceType, id)
}
