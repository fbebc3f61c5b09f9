package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResume_ValidPayload(t *testing.T) {
	data := []byte(`{
		"skills": ["Go", "go", "SQL"],
		"experience": [{"title": "Engineer", "company": "Acme", "bullets": ["shipped a service"]}]
	}`)

	resume, err := DecodeResume(data)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, resume.Skills)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Acme", resume.Experience[0].Company)
}

func TestDecodeResume_MissingFieldsTolerated(t *testing.T) {
	resume, err := DecodeResume([]byte(`{}`))

	require.NoError(t, err)
	assert.Empty(t, resume.Skills)
	assert.Empty(t, resume.Experience)
}

func TestDecodeResume_WrongTypeFailsValidation(t *testing.T) {
	_, err := DecodeResume([]byte(`{"skills": "Go"}`))

	require.Error(t, err)
	var validationErr *SchemaValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestDecodeJobDescription_ValidPayload(t *testing.T) {
	data := []byte(`{
		"required_skills": ["TypeScript"],
		"preferred_skills": ["React"],
		"responsibilities": ["build features"],
		"seniority_level": "intern",
		"years_of_experience": null
	}`)

	job, err := DecodeJobDescription(data)

	require.NoError(t, err)
	assert.Equal(t, []string{"TypeScript"}, job.RequiredSkills)
	assert.Equal(t, []string{"build features"}, job.Responsibilities)
	assert.Nil(t, job.YearsOfExperience)
}

func TestDecodeJobDescription_WrongTypeFailsValidation(t *testing.T) {
	_, err := DecodeJobDescription([]byte(`{"responsibilities": [1, 2]}`))

	require.Error(t, err)
	var validationErr *SchemaValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestDecodeJobDescription_MalformedJSON(t *testing.T) {
	_, err := DecodeJobDescription([]byte(`not json`))

	require.Error(t, err)
}
