package profiling

import (
	"fmt"
	"strings"

	"github.com/jonathan/culture-profiler/internal/types"
)

// profilingNotes creates a brief human-readable summary of the run.
func profilingNotes(culture types.Culture, religion types.Religion, confidence float64, responseCount int) string {
	parts := []string{
		fmt.Sprintf("Cultural profile: %s", culture),
		fmt.Sprintf("Religious affiliation: %s", religion),
		fmt.Sprintf("Based on %d responses", responseCount),
	}

	if confidence < lowConfidenceThreshold {
		parts = append(parts, fmt.Sprintf("Warning: low confidence (%.0f%%), confirmation recommended", confidence*100))
	}

	return strings.Join(parts, ". ")
}
