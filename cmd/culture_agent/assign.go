package main

import (
	"fmt"
	"os"

	"github.com/jonathan/culture-profiler/internal/assignment"
	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/jonathan/culture-profiler/internal/config"
	"github.com/jonathan/culture-profiler/internal/observability"
	"github.com/spf13/cobra"
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a cultural profile from questionnaire responses",
	Long:  "Profiles a response document, applies the consistency rules and produces an AssignmentResult JSON with the confidence tier, confirmation decision and any follow-up questions.",
	RunE:  runAssign,
}

var (
	assignResponses string
	assignOutput    string
	assignLang      string
	assignVerbose   bool
	assignConfig    string
)

func init() {
	assignCmd.Flags().StringVarP(&assignResponses, "responses", "r", "", "Path to input response document JSON file")
	assignCmd.Flags().StringVarP(&assignOutput, "out", "o", "", "Path to output AssignmentResult JSON file (default: stdout)")
	assignCmd.Flags().StringVarP(&assignLang, "lang", "l", "", "Language code for follow-up question text (en, ru, uk)")
	assignCmd.Flags().BoolVarP(&assignVerbose, "verbose", "v", false, "Print a human-readable result summary")
	assignCmd.Flags().StringVarP(&assignConfig, "config", "c", "", "Path to JSON config file supplying flag defaults")

	rootCmd.AddCommand(assignCmd)
}

func runAssign(_ *cobra.Command, _ []string) error {
	if assignConfig != "" {
		cfg, err := config.LoadConfig(assignConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		applyAssignConfig(cfg)
	}

	if assignResponses == "" {
		return fmt.Errorf("responses file is required (--responses flag or 'responses' config key)")
	}

	doc, err := loadResponseDocument(assignResponses)
	if err != nil {
		return err
	}

	locale := assignLang
	if locale == "" {
		locale = doc.Locale
	}

	assigner := assignment.NewAssignerWithLocale(catalog.Default(), locale)
	result := assigner.AssignCulture(doc.Responses)

	if assignVerbose {
		observability.NewPrinter(os.Stderr).PrintAssignmentResult(&result)
	}

	return writeJSONOutput(assignOutput, result)
}

// applyAssignConfig fills unset flags from config values.
func applyAssignConfig(cfg *config.Config) {
	if assignResponses == "" {
		assignResponses = cfg.Responses
	}
	if assignOutput == "" {
		assignOutput = cfg.Out
	}
	if assignLang == "" {
		assignLang = cfg.Locale
	}
	if !assignVerbose {
		assignVerbose = cfg.Verbose
	}
}
