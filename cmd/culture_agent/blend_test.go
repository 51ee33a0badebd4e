package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/culture-profiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetBlendFlags clears the blend flag variables for the test and
// restores the previous values afterwards.
func resetBlendFlags(t *testing.T) {
	t.Helper()
	prevPrimary := blendPrimary
	prevSecondary := blendSecondary
	prevOutput := blendOutput
	prevVerbose := blendVerbose
	t.Cleanup(func() {
		blendPrimary = prevPrimary
		blendSecondary = prevSecondary
		blendOutput = prevOutput
		blendVerbose = prevVerbose
	})
	blendPrimary = ""
	blendSecondary = ""
	blendOutput = ""
	blendVerbose = false
}

func TestRunBlend_ValidCultures(t *testing.T) {
	resetBlendFlags(t)
	outputFile := filepath.Join(t.TempDir(), "blended.json")

	blendPrimary = "ukrainian"
	blendSecondary = "polish"
	blendOutput = outputFile
	require.NoError(t, runBlend(nil, nil))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var profile types.CulturalProfile
	require.NoError(t, json.Unmarshal(content, &profile))
	assert.Equal(t, types.CultureUkrainian, profile.Culture)
	assert.Equal(t, "true", profile.HistoricalContext["mixed_profile"])
	assert.Equal(t, "polish", profile.HistoricalContext["secondary_culture"])
}

func TestRunBlend_UnknownCultureRejected(t *testing.T) {
	resetBlendFlags(t)

	blendPrimary = "klingon"
	blendSecondary = "polish"
	err := runBlend(nil, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid blend request")
	assert.Contains(t, err.Error(), "unknown primary culture")
}

func TestRunBlend_EmptySecondaryRejected(t *testing.T) {
	resetBlendFlags(t)

	blendPrimary = "ukrainian"
	err := runBlend(nil, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid blend request")
}

func TestBlendCommand_MissingSecondaryFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "output.json")

	cmd := exec.Command(binaryPath, "blend",
		"--primary", "ukrainian",
		"--out", outputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}
