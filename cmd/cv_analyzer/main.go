// Package main provides the entry point for the CV analyzer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_analyzer",
	Short: "ATS-style CV analyzer",
	Long:  "CV Analyzer scores resumes against QA and automation engineering roles the way an applicant tracking system would: categorized keyword matching, weighted scoring, experience extraction, and actionable recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
