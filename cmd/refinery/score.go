package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/refine"
	"github.com/nexuscv/ats-refinery/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a role",
	Long:  "Scores a resume JSON file against a role's required skill catalog and prints the component breakdown without modifying the resume.",
	RunE:  runScore,
}

var (
	scoreInput string
	scoreRole  string
	scoreJSON  bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreRole, "role", "r", "", "Target role (required)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the full result as JSON")

	if err := scoreCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(scoreInput)
	if err != nil {
		return err
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	engine := refine.NewEngine(cat, nil)
	score, role := engine.ScoreOnly(resume, scoreRole)

	if scoreJSON {
		return printJSON(map[string]any{"role": role, "score": score})
	}

	printBreakdown(role, score)
	return nil
}

// loadResume reads, sanitizes, and validates a resume JSON file.
func loadResume(path string) (*types.ResumeContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var resume types.ResumeContent
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	resume.Sanitize()
	if err := resume.Validate(); err != nil {
		return nil, err
	}
	return &resume, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printBreakdown(role string, score *types.ScoreResult) {
	fmt.Printf("Role:         %s\n", role)
	fmt.Printf("Total:        %d / %d\n", score.TotalScore, types.MaxTotalScore)
	fmt.Printf("  Skills:       %d / %d\n", score.SkillScore, types.MaxSkillScore)
	fmt.Printf("  Keywords:     %d / %d\n", score.KeywordScore, types.MaxKeywordScore)
	fmt.Printf("  Completeness: %d / %d\n", score.CompletenessScore, types.MaxCompletenessScore)
	if len(score.MatchedSkills) > 0 {
		fmt.Printf("Matched:      %s\n", strings.Join(score.MatchedSkills, ", "))
	}
	if len(score.MissingClassified.Critical) > 0 {
		fmt.Printf("Critical gap: %s\n", strings.Join(score.MissingClassified.Critical, ", "))
	}
	if len(score.MissingClassified.Optional) > 0 {
		fmt.Printf("Optional gap: %s\n", strings.Join(score.MissingClassified.Optional, ", "))
	}
}
