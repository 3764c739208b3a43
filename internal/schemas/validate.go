// Package schemas provides JSON Schema validation for catalog data files.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports one or more schema violations in a document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "schema validation failed: " + strings.Join(msgs, "; ")
}

// Validate checks a JSON document against a JSON Schema. It returns a
// *ValidationError listing every violated field, or an error if the schema or
// document cannot be parsed at all.
func Validate(schema, document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, re := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return verr
}
