// Package schemas provides JSON Schema validation for CV and job posting documents.
package schemas

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed cv.schema.json
var cvSchema string

//go:embed job_posting.schema.json
var jobPostingSchema string

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateCV validates raw CV JSON against the embedded CV schema.
func ValidateCV(jsonContent string) error {
	return validateString(cvSchema, jsonContent, "cv.schema.json")
}

// ValidatePosting validates raw job posting JSON against the embedded
// job posting schema.
func ValidatePosting(jsonContent string) error {
	return validateString(jobPostingSchema, jsonContent, "job_posting.schema.json")
}

// ValidateJSONFile validates a JSON file on disk against one of the
// embedded schemas, selected by schemaName ("cv" or "job_posting").
func ValidateJSONFile(schemaName, jsonPath string) error {
	var schema string
	switch schemaName {
	case "cv":
		schema = cvSchema
	case "job_posting":
		schema = jobPostingSchema
	default:
		return fmt.Errorf("unknown schema: %s", schemaName)
	}

	absPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file %s: %w", absPath, err)
	}
	return validateString(schema, string(data), schemaName+".schema.json")
}

func validateString(schemaContent, jsonContent, schemaName string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
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
