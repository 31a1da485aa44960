package intake

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	errNotObject    = errors.New("request body must be a JSON object")
	errTrailingData = errors.New("request body must contain a single JSON object")
)

// DecodeSubmission reads exactly one JSON object from r. Numbers are kept as
// json.Number so they echo back with their original text.
func DecodeSubmission(r io.Reader) (map[string]interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", errNotObject, err)
	}
	if raw == nil {
		return nil, errNotObject
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case err == nil:
		return nil, errTrailingData
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("%w: %w", errTrailingData, err)
	}
	return raw, nil
}
