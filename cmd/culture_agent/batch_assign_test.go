package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/culture-profiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetBatchAssignFlags clears the batch-assign flag variables for the
// test and restores the previous values afterwards.
func resetBatchAssignFlags(t *testing.T) {
	t.Helper()
	prevDir := batchAssignDir
	prevOutput := batchAssignOutput
	prevLang := batchAssignLang
	prevConcurrency := batchAssignConcurrency
	t.Cleanup(func() {
		batchAssignDir = prevDir
		batchAssignOutput = prevOutput
		batchAssignLang = prevLang
		batchAssignConcurrency = prevConcurrency
	})
	batchAssignDir = ""
	batchAssignOutput = ""
	batchAssignLang = ""
	batchAssignConcurrency = 4
}

func TestRunBatchAssign_DirectoryRoundTrip(t *testing.T) {
	resetBatchAssignFlags(t)
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "user_a.json"),
		[]byte(`{"responses":[{"question_id":"direct_culture","selected_option_id":"culture_ukrainian","confidence_level":8}]}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "user_b.json"),
		[]byte(lowConfidenceDoc("")), 0644))
	// non-JSON entries are ignored
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "notes.txt"), []byte("skip me"), 0644))

	batchAssignDir = inputDir
	batchAssignOutput = outputDir
	require.NoError(t, runBatchAssign(nil, nil))

	resultA := readAssignmentResult(t, filepath.Join(outputDir, "user_a.json"))
	assert.Equal(t, types.CultureUkrainian, resultA.Culture)
	assert.Equal(t, types.TierVeryHigh, resultA.Tier)

	resultB := readAssignmentResult(t, filepath.Join(outputDir, "user_b.json"))
	assert.Equal(t, types.TierLow, resultB.Tier)
	assert.True(t, resultB.RequiresConfirmation)

	assert.NotEqual(t, resultA.AssignmentID, resultB.AssignmentID)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunBatchAssign_InvalidDocumentAborts(t *testing.T) {
	resetBatchAssignFlags(t)
	inputDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "broken.json"),
		[]byte(`{"responses":"not an array"}`), 0644))

	batchAssignDir = inputDir
	batchAssignOutput = filepath.Join(t.TempDir(), "out")
	err := runBatchAssign(nil, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "batch assignment failed")
}

func TestRunBatchAssign_MissingInputDir(t *testing.T) {
	resetBatchAssignFlags(t)

	batchAssignDir = filepath.Join(t.TempDir(), "nope")
	batchAssignOutput = filepath.Join(t.TempDir(), "out")
	err := runBatchAssign(nil, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input directory")
}
