package main

import (
	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the profiling questionnaire",
	Long:  "Lists the profiling questions and answer options rendered for the requested language. Unsupported languages fall back to English.",
	RunE:  runQuestions,
}

var (
	questionsLang   string
	questionsOutput string
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsLang, "lang", "l", catalog.DefaultLanguage, "Language code for question text (en, ru, uk)")
	questionsCmd.Flags().StringVarP(&questionsOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(_ *cobra.Command, _ []string) error {
	cat := catalog.Default()
	views := cat.ListQuestions(questionsLang)
	return writeJSONOutput(questionsOutput, views)
}
