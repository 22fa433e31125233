// Package main provides the entry point for the resume-buddy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_buddy",
	Short: "Resume intelligence pipeline",
	Long:  "Resume Buddy extracts structured content from resume files, derives a career profile and ATS score, and analyzes job postings against the stored resume.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
