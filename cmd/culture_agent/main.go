// Package main implements the culture_agent CLI for questionnaire-based cultural profiling.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "culture_agent",
	Short: "Cultural profiling and assignment engine",
	Long:  "culture_agent assigns a cultural/religious profile to a user from a short weighted questionnaire and produces the structured results that drive downstream content adaptation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
