package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/jonathan/culture-profiler/internal/assignment"
	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchAssignCmd = &cobra.Command{
	Use:   "batch-assign",
	Short: "Assign cultural profiles for a directory of response documents",
	Long:  "Runs the assignment engine over every *.json response document in a directory, writing one AssignmentResult JSON per input. Documents are processed concurrently; the engine itself is pure and safe for parallel use.",
	RunE:  runBatchAssign,
}

var (
	batchAssignDir         string
	batchAssignOutput      string
	batchAssignLang        string
	batchAssignConcurrency int
)

func init() {
	batchAssignCmd.Flags().StringVarP(&batchAssignDir, "dir", "d", "", "Directory containing response document JSON files (required)")
	batchAssignCmd.Flags().StringVarP(&batchAssignOutput, "out", "o", "", "Output directory for AssignmentResult JSON files (required)")
	batchAssignCmd.Flags().StringVarP(&batchAssignLang, "lang", "l", "", "Language code for follow-up question text (en, ru, uk)")
	batchAssignCmd.Flags().IntVarP(&batchAssignConcurrency, "concurrency", "n", 4, "Number of documents processed in parallel")

	if err := batchAssignCmd.MarkFlagRequired("dir"); err != nil {
		panic(fmt.Sprintf("failed to mark dir flag as required: %v", err))
	}
	if err := batchAssignCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(batchAssignCmd)
}

func runBatchAssign(_ *cobra.Command, _ []string) error {
	if batchAssignConcurrency < 1 {
		batchAssignConcurrency = 1
	}

	entries, err := os.ReadDir(batchAssignDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory %s: %w", batchAssignDir, err)
	}

	if err := os.MkdirAll(batchAssignOutput, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", batchAssignOutput, err)
	}

	assigner := assignment.NewAssignerWithLocale(catalog.Default(), batchAssignLang)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(batchAssignConcurrency)

	var processed atomic.Int64
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		inputPath := filepath.Join(batchAssignDir, entry.Name())
		outputPath := filepath.Join(batchAssignOutput, entry.Name())
		g.Go(func() error {
			doc, err := loadResponseDocument(inputPath)
			if err != nil {
				return err
			}
			result := assigner.AssignCulture(doc.Responses)
			if err := writeJSONOutput(outputPath, result); err != nil {
				return err
			}
			processed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch assignment failed: %w", err)
	}

	fmt.Printf("Assigned %d response documents to %s\n", processed.Load(), batchAssignOutput)
	return nil
}
