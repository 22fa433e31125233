package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Analyze a job posting against the stored resume",
	Long:  "Run compatibility analysis of a job posting JSON file against the user's stored resume and persist the resulting suggestion.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeUserID  string
	analyzeJobFile string
)

func init() {
	analyzeJobCmd.Flags().StringVar(&analyzeUserID, "user-id", "", "User UUID (required)")
	analyzeJobCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job posting JSON file (required)")
	_ = analyzeJobCmd.MarkFlagRequired("user-id")
	_ = analyzeJobCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(analyzeUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	data, err := os.ReadFile(analyzeJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return fmt.Errorf("failed to parse job JSON: %w", err)
	}

	ctx := context.Background()
	svc, _, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	suggestion, err := svc.AnalyzeJob(ctx, userID, &job)
	if err != nil {
		return err
	}
	return printJSON(suggestion)
}
