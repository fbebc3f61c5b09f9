package normalize

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the extraction collaborator payloads. No field is
// required: absent fields are tolerated and substituted with empty values
// during normalization. Wrong types, however, indicate a broken collaborator
// contract and fail validation loudly.
const resumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "skills": {"type": "array", "items": {"type": "string"}},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "company": {"type": "string"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "institution": {"type": "string"}
        }
      }
    }
  }
}`

const jobDescriptionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "required_skills": {"type": "array", "items": {"type": "string"}},
    "preferred_skills": {"type": "array", "items": {"type": "string"}},
    "responsibilities": {"type": "array", "items": {"type": "string"}},
    "education_requirements": {"type": "array", "items": {"type": "string"}},
    "seniority_level": {"type": "string"},
    "seniority_signals": {"type": "array", "items": {"type": "string"}},
    "years_of_experience": {"type": ["number", "null"]}
  }
}`

// SchemaValidationError reports a collaborator payload that failed schema
// validation, with per-field messages.
type SchemaValidationError struct {
	Payload string
	Fields  []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("%s payload failed schema validation: %s", e.Payload, strings.Join(e.Fields, "; "))
}

// validateAgainstSchema validates a JSON document against an embedded schema
func validateAgainstSchema(schema, payloadName string, data []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate %s payload: %w", payloadName, err)
	}

	if !result.Valid() {
		fields := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			fields = append(fields, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return &SchemaValidationError{Payload: payloadName, Fields: fields}
	}

	return nil
}
