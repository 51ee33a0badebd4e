package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponsesSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "responses.schema.json"))
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestResponsesSchema_HasRequiredFields(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "responses.schema.json"))
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schemaObj))

	assert.Contains(t, schemaObj, "$schema")
	assert.Contains(t, schemaObj, "type")
	assert.Contains(t, schemaObj, "properties")

	properties, ok := schemaObj["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, properties, "responses")
	assert.Contains(t, properties, "locale")
}
