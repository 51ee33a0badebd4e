package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"locale": "ru",
		"verbose": true,
		"concurrency": 8
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Locale)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Empty(t, cfg.Responses)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "{not json")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate_NegativeConcurrency(t *testing.T) {
	cfg := &Config{Concurrency: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingResponsesFile(t *testing.T) {
	cfg := &Config{Responses: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_OK(t *testing.T) {
	responses := writeConfigFile(t, `{"responses": []}`)
	cfg := &Config{Responses: responses, Concurrency: 4}
	assert.NoError(t, cfg.Validate())
}
