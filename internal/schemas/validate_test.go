package schemas

import (
	"errors"
	"testing"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validCandidate() *types.Candidate {
	return &types.Candidate{
		FullName:             "Jane Doe",
		Email:                "jane@example.com",
		GithubURL:            strPtr("https://github.com/jane"),
		TotalYearsExperience: 7,
		Skills:               []types.Skill{{Name: "C#", Years: 5}, {Name: "SQL", Years: 0.5}},
		Employment: []types.EmploymentRecord{
			{Company: "Acme", Title: "Engineer", Start: strPtr("2018-01")},
			{Company: "", Title: "Freelancer"},
		},
	}
}

func TestValidateCandidate_Valid(t *testing.T) {
	assert.NoError(t, ValidateCandidate(validCandidate()))
}

func TestValidateCandidate_EmptyCollections(t *testing.T) {
	c := &types.Candidate{Skills: []types.Skill{}, Employment: []types.EmploymentRecord{}}
	assert.NoError(t, ValidateCandidate(c))
}

func TestValidateCandidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *types.Candidate)
		field  string
	}{
		{
			name:   "years above ceiling",
			mutate: func(c *types.Candidate) { c.Skills[0].Years = 61 },
			field:  "skills.0.years",
		},
		{
			name:   "negative years",
			mutate: func(c *types.Candidate) { c.Skills[1].Years = -1 },
			field:  "skills.1.years",
		},
		{
			name:   "blank skill name",
			mutate: func(c *types.Candidate) { c.Skills[0].Name = "" },
			field:  "skills.0.name",
		},
		{
			name:   "total years above ceiling",
			mutate: func(c *types.Candidate) { c.TotalYearsExperience = 75 },
			field:  "totalYearsExperience",
		},
		{
			name:   "employment without company and title",
			mutate: func(c *types.Candidate) { c.Employment[1].Title = "  " },
			field:  "employment.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(c)

			err := ValidateCandidate(c)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}

func TestValidateJSON_NestedFieldValidation(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["person"],
		"properties": {
			"person": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			}
		}
	}`

	jsonContent := `{"person": {}}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
	// Check that the field path includes nested field
	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field != "" {
			found = true
			break
		}
	}
	assert.True(t, found, "should include field path in error")
}
