package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexuscv/ats-refinery/internal/analysis"
	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/fetch"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Produce a full analysis report for a resume",
	Long:  "Scores a resume, derives structural insights, predicts matching roles, optionally matches against a job description, and recommends a career plan. Prints the report as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeInput   string
	analyzeRole    string
	analyzeJDFile  string
	analyzeJDURL   string
	analyzeBrowser bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Path to resume JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target role (required)")
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL of a job posting to fetch")
	analyzeCmd.Flags().BoolVar(&analyzeBrowser, "browser", false, "Render the job posting page with a headless browser")

	if err := analyzeCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	resume, err := loadResume(analyzeInput)
	if err != nil {
		return err
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	jobDescription, err := loadJobDescription(ctx)
	if err != nil {
		return err
	}

	report, err := analysis.Analyze(ctx, resume, analyzeRole, jobDescription, cat)
	if err != nil {
		return err
	}

	return printJSON(report)
}

func loadJobDescription(ctx context.Context) (string, error) {
	if analyzeJDFile != "" {
		data, err := os.ReadFile(analyzeJDFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	}
	if analyzeJDURL != "" {
		opts := fetch.DefaultOptions()
		opts.UseBrowser = analyzeBrowser
		return fetch.JobDescription(ctx, analyzeJDURL, opts)
	}
	return "", nil
}
