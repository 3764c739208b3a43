// Package main provides the ATS Refinery command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "refinery",
	Short: "ATS resume scoring and refinement",
	Long:  "ATS Refinery scores resumes against role skill catalogs and iteratively refines them toward a target score, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
