package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/culture-profiler/internal/schemas"
	"github.com/jonathan/culture-profiler/internal/types"
)

// loadResponseDocument reads a response-document JSON file, validates
// it against the embedded schema and the struct validator, and returns
// the parsed document.
func loadResponseDocument(path string) (*types.ResponseDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file %s: %w", path, err)
	}

	if err := schemas.ValidateResponsesString(string(content)); err != nil {
		return nil, fmt.Errorf("responses file %s failed schema validation: %w", path, err)
	}

	var doc types.ResponseDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal responses JSON: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("responses file %s failed validation: %w", path, err)
	}

	return &doc, nil
}

// writeJSONOutput marshals v with indentation and writes it to the
// output path, creating parent directories as needed. An empty path
// writes to stdout.
func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}
