// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/culture-profiler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfilingResult outputs a human-readable summary of a profiling run.
func (p *Printer) PrintProfilingResult(result *types.ProfilingResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Culture:    %s\n", result.PrimaryCulture))
	sb.WriteString(fmt.Sprintf("Religion:   %s\n", result.PrimaryReligion))
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", result.Confidence*100))
	sb.WriteString(fmt.Sprintf("Responses:  %d\n", result.ResponseCount))

	if len(result.Alternatives) > 0 {
		sb.WriteString("\nAlternatives:\n")
		count := min(len(result.Alternatives), maxItemsToShow)
		for i := 0; i < count; i++ {
			alt := result.Alternatives[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.0f%%)\n", alt.Culture, alt.Score*100))
		}
	}

	p.printBox("PROFILING RESULT", strings.TrimRight(sb.String(), "\n"))
}

// PrintAssignmentResult outputs a human-readable summary of an assignment decision.
func (p *Printer) PrintAssignmentResult(result *types.AssignmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Culture:      %s\n", result.Culture))
	sb.WriteString(fmt.Sprintf("Religion:     %s\n", result.Religion))
	sb.WriteString(fmt.Sprintf("Tier:         %s\n", result.Tier))
	sb.WriteString(fmt.Sprintf("Confidence:   %.0f%%\n", result.Confidence*100))
	sb.WriteString(fmt.Sprintf("Confirmation: %v\n", result.RequiresConfirmation))

	if len(result.Alternatives) > 0 {
		sb.WriteString("\nAlternatives:\n")
		count := min(len(result.Alternatives), maxItemsToShow)
		for i := 0; i < count; i++ {
			alt := result.Alternatives[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.0f%%)\n", alt.Culture, alt.Score*100))
		}
	}

	if len(result.FollowUpQuestions) > 0 {
		sb.WriteString("\nFollow-up questions:\n")
		for _, q := range result.FollowUpQuestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", q.Text))
		}
	}

	p.printBox("ASSIGNMENT RESULT", strings.TrimRight(sb.String(), "\n"))
}

// PrintBlendedProfile outputs a human-readable summary of a blended profile.
func (p *Printer) PrintBlendedProfile(profile *types.CulturalProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Culture:  %s\n", profile.Culture))
	sb.WriteString(fmt.Sprintf("Religion: %s\n", profile.Religion))

	if len(profile.SensitiveTopics) > 0 {
		sb.WriteString("\nSensitive topics:\n")
		count := min(len(profile.SensitiveTopics), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.SensitiveTopics[i]))
		}
		if len(profile.SensitiveTopics) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.SensitiveTopics)-maxItemsToShow))
		}
	}

	if len(profile.PreferredMetaphors) > 0 {
		sb.WriteString("\nPreferred metaphors:\n")
		count := min(len(profile.PreferredMetaphors), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.PreferredMetaphors[i]))
		}
	}

	p.printBox("CULTURAL PROFILE", strings.TrimRight(sb.String(), "\n"))
}
