package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	files, err := filepath.Glob("*.schema.json")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, schemaFile := range files {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var v map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON: %s", schemaFile)
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", v["$schema"])
		})
	}
}

func TestCandidateEmbedded(t *testing.T) {
	data, err := os.ReadFile("candidate.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), Candidate)
}
