package main

import (
	"fmt"
	"os"

	"github.com/jonathan/culture-profiler/internal/blending"
	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/jonathan/culture-profiler/internal/observability"
	"github.com/jonathan/culture-profiler/internal/types"
	"github.com/spf13/cobra"
)

var blendCmd = &cobra.Command{
	Use:   "blend",
	Short: "Blend two cultural profiles into a mixed profile",
	Long:  "Merges the catalog profiles of two cultures into one mixed CulturalProfile JSON, biased toward the primary culture.",
	RunE:  runBlend,
}

var (
	blendPrimary   string
	blendSecondary string
	blendOutput    string
	blendVerbose   bool
)

func init() {
	blendCmd.Flags().StringVarP(&blendPrimary, "primary", "p", "", "Primary culture identifier (required)")
	blendCmd.Flags().StringVarP(&blendSecondary, "secondary", "s", "", "Secondary culture identifier (required)")
	blendCmd.Flags().StringVarP(&blendOutput, "out", "o", "", "Path to output CulturalProfile JSON file (default: stdout)")
	blendCmd.Flags().BoolVarP(&blendVerbose, "verbose", "v", false, "Print a human-readable profile summary")

	if err := blendCmd.MarkFlagRequired("primary"); err != nil {
		panic(fmt.Sprintf("failed to mark primary flag as required: %v", err))
	}
	if err := blendCmd.MarkFlagRequired("secondary"); err != nil {
		panic(fmt.Sprintf("failed to mark secondary flag as required: %v", err))
	}

	rootCmd.AddCommand(blendCmd)
}

func runBlend(_ *cobra.Command, _ []string) error {
	req := types.BlendRequest{
		PrimaryCulture:   types.Culture(blendPrimary),
		SecondaryCulture: types.Culture(blendSecondary),
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid blend request: %w", err)
	}

	profile := blending.Blend(catalog.Default(), req.PrimaryCulture, req.SecondaryCulture)

	if blendVerbose {
		observability.NewPrinter(os.Stderr).PrintBlendedProfile(&profile)
	}

	return writeJSONOutput(blendOutput, profile)
}
