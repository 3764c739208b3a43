package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/logger"
	"github.com/nexuscv/ats-refinery/internal/refine"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Refine a resume toward the target score",
	Long:  "Runs the full refinement pipeline on a resume JSON file: role normalization, language polish, skill diversification, critical skill injection, and complementary expansion. Writes the refined resume and prints the final score.",
	RunE:  runRefine,
}

var (
	refineInput  string
	refineOutput string
	refineRole   string
	refineDebug  bool
)

func init() {
	refineCmd.Flags().StringVarP(&refineInput, "input", "i", "", "Path to resume JSON file (required)")
	refineCmd.Flags().StringVarP(&refineOutput, "output", "o", "", "Path to write the refined resume (default: stdout)")
	refineCmd.Flags().StringVarP(&refineRole, "role", "r", "", "Target role (required)")
	refineCmd.Flags().BoolVar(&refineDebug, "debug", false, "Enable debug logging")

	if err := refineCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := refineCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(refineCmd)
}

func runRefine(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(refineInput)
	if err != nil {
		return err
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	log, err := logger.New(false, refineDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine := refine.NewEngine(cat, log)
	result := engine.Refine(resume, refineRole)

	out, err := json.MarshalIndent(result.Resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode refined resume: %w", err)
	}

	if refineOutput != "" {
		if err := os.WriteFile(refineOutput, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write refined resume: %w", err)
		}
		fmt.Printf("Refined resume written to %s\n", refineOutput)
	} else {
		fmt.Println(string(out))
	}

	fmt.Println()
	printBreakdown(result.Role, result.Score)
	fmt.Printf("Scoring passes: %d\n", result.ScoringPasses)
	return nil
}
