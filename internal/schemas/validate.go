// Package schemas provides JSON Schema validation for response
// documents crossing the file boundary.
package schemas

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responsesSchema is the embedded copy of schemas/responses.schema.json.
// Keeping it in-binary means validation works regardless of the working
// directory the CLI runs from.
const responsesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ResponseDocument",
  "type": "object",
  "required": ["responses"],
  "properties": {
    "locale": {
      "type": "string"
    },
    "responses": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question_id", "selected_option_id"],
        "properties": {
          "question_id": {
            "type": "string",
            "minLength": 1
          },
          "selected_option_id": {
            "type": "string",
            "minLength": 1
          },
          "confidence_level": {
            "type": "integer",
            "minimum": 1,
            "maximum": 10
          }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema or document
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema validation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema validation failed: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateResponsesString validates JSON response-document content
// against the embedded schema.
func ValidateResponsesString(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(responsesSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Message: "could not load schema or document",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// ValidateResponsesFile validates a response-document JSON file against
// the embedded schema.
func ValidateResponsesFile(jsonPath string) error {
	content, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read responses file %s: %w", jsonPath, err)
	}
	return ValidateResponsesString(string(content))
}
