package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/culture-profiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetProfileFlags clears the profile flag variables for the test and
// restores the previous values afterwards.
func resetProfileFlags(t *testing.T) {
	t.Helper()
	prevResponses := profileResponses
	prevOutput := profileOutput
	prevVerbose := profileVerbose
	t.Cleanup(func() {
		profileResponses = prevResponses
		profileOutput = prevOutput
		profileVerbose = prevVerbose
	})
	profileResponses = ""
	profileOutput = ""
	profileVerbose = false
}

func TestRunProfile_ValidInput(t *testing.T) {
	resetProfileFlags(t)
	outputFile := filepath.Join(t.TempDir(), "profile.json")

	profileResponses = writeResponsesFile(t, `{"responses":[{"question_id":"direct_culture","selected_option_id":"culture_ukrainian","confidence_level":8}]}`)
	profileOutput = outputFile
	require.NoError(t, runProfile(nil, nil))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result types.ProfilingResult
	require.NoError(t, json.Unmarshal(content, &result))
	assert.Equal(t, types.CultureUkrainian, result.PrimaryCulture)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, 1, result.ResponseCount)
}

func TestRunProfile_InvalidResponsesFile(t *testing.T) {
	resetProfileFlags(t)

	profileResponses = filepath.Join(t.TempDir(), "nope.json")
	err := runProfile(nil, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read responses file")
}
