package main

import (
	"fmt"
	"os"

	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/jonathan/culture-profiler/internal/observability"
	"github.com/jonathan/culture-profiler/internal/profiling"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Analyze questionnaire responses into a profiling result",
	Long:  "Runs the weighted-aggregation algorithm over a response document and produces a ProfilingResult JSON with the primary culture, religion, confidence and ranked alternatives.",
	RunE:  runProfile,
}

var (
	profileResponses string
	profileOutput    string
	profileVerbose   bool
)

func init() {
	profileCmd.Flags().StringVarP(&profileResponses, "responses", "r", "", "Path to input response document JSON file (required)")
	profileCmd.Flags().StringVarP(&profileOutput, "out", "o", "", "Path to output ProfilingResult JSON file (default: stdout)")
	profileCmd.Flags().BoolVarP(&profileVerbose, "verbose", "v", false, "Print a human-readable result summary")

	if err := profileCmd.MarkFlagRequired("responses"); err != nil {
		panic(fmt.Sprintf("failed to mark responses flag as required: %v", err))
	}

	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	doc, err := loadResponseDocument(profileResponses)
	if err != nil {
		return err
	}

	profiler := profiling.NewProfiler(catalog.Default())
	result := profiler.AnalyzeProfile(doc.Responses)

	if profileVerbose {
		observability.NewPrinter(os.Stderr).PrintProfilingResult(&result)
	}

	return writeJSONOutput(profileOutput, result)
}
