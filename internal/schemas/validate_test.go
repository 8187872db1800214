package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCV_Valid(t *testing.T) {
	err := ValidateCV(`{
		"personal_info": {"name": "Jane Doe", "title": "Engineer"},
		"experience": [{"position": "Engineer", "start_date": "2020-01"}],
		"education": [{"degree": "Bachelor of Science"}],
		"skills": [{"name": "Go"}]
	}`)

	assert.NoError(t, err)
}

func TestValidateCV_MissingRequiredField(t *testing.T) {
	err := ValidateCV(`{"experience": [{"employer": "Acme"}]}`)

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateCV_UnknownTopLevelField(t *testing.T) {
	err := ValidateCV(`{"hobbies": ["chess"]}`)

	assert.Error(t, err)
}

func TestValidateCV_MalformedJSON(t *testing.T) {
	err := ValidateCV(`{broken`)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

func TestValidatePosting_Valid(t *testing.T) {
	err := ValidatePosting(`{
		"title": "Engineer",
		"description": "Build things",
		"qualifications": ["5+ years of experience"],
		"skills": ["Go"]
	}`)

	assert.NoError(t, err)
}

func TestValidatePosting_WrongType(t *testing.T) {
	err := ValidatePosting(`{"skills": "Go"}`)

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "skills", ve.Errors[0].Field)
}

func TestValidateJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "Engineer"}`), 0644))

	assert.NoError(t, ValidateJSONFile("job_posting", path))
	assert.Error(t, ValidateJSONFile("unknown", path))
	assert.Error(t, ValidateJSONFile("cv", filepath.Join(t.TempDir(), "absent.json")))
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{{Field: "title", Message: "is required"}}}

	msg := ve.Error()

	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "title: is required")
}
