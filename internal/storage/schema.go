package storage

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// recordSchema is the structural contract for the stored record. Validation
// runs exactly once, at the deserialization boundary: bytes that pass are
// safe to decode into a typed record, bytes that fail are treated as
// corruption. Unknown curriculum entries are permitted (and later ignored);
// wrongly typed fields are not.
const recordSchema = `{
	"type": "object",
	"required": ["version", "lastUpdated", "curriculum"],
	"properties": {
		"version": {"type": "string"},
		"lastUpdated": {"type": "string"},
		"curriculum": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"additionalProperties": {
					"type": "object",
					"required": ["completed"],
					"properties": {
						"completed": {"type": "boolean"},
						"startDate": {"type": "string", "format": "date"},
						"endDate": {"type": "string", "format": "date"}
					}
				}
			}
		}
	}
}`

var recordSchemaLoader = gojsonschema.NewStringLoader(recordSchema)

// validateRecordBytes checks raw stored bytes against recordSchema. Returns
// an error for unparseable JSON or any structural violation.
func validateRecordBytes(data []byte) error {
	result, err := gojsonschema.Validate(recordSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("parsing stored record: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("stored record failed validation: %s", strings.Join(msgs, "; "))
	}
	return nil
}
