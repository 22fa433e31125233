package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dev-rohit-gupta/resume-buddy/internal/career"
)

var showResumeCmd = &cobra.Command{
	Use:   "show-resume",
	Short: "Print the stored resume record for a user",
	RunE:  runShowResume,
}

var updateResumeCmd = &cobra.Command{
	Use:   "update-resume",
	Short: "Merge a partial content update into the stored resume",
	Long:  "Apply a partial JSON content document over the stored resume content. Edited sections replace stored ones; touching content re-runs the career analysis and bumps the version.",
	RunE:  runUpdateResume,
}

var downloadResumeCmd = &cobra.Command{
	Use:   "download-resume",
	Short: "Download the raw resume file from object storage",
	RunE:  runDownloadResume,
}

var (
	showUserID string

	updateUserID      string
	updateContentFile string
	updateExtension   string

	downloadUserID string
	downloadOut    string
)

func init() {
	showResumeCmd.Flags().StringVar(&showUserID, "user-id", "", "User UUID (required)")
	_ = showResumeCmd.MarkFlagRequired("user-id")

	updateResumeCmd.Flags().StringVar(&updateUserID, "user-id", "", "User UUID (required)")
	updateResumeCmd.Flags().StringVar(&updateContentFile, "content", "", "Path to partial content JSON file")
	updateResumeCmd.Flags().StringVar(&updateExtension, "extension", "", "New file extension to record")
	_ = updateResumeCmd.MarkFlagRequired("user-id")

	downloadResumeCmd.Flags().StringVar(&downloadUserID, "user-id", "", "User UUID (required)")
	downloadResumeCmd.Flags().StringVarP(&downloadOut, "out", "o", "", "Path to write the file to (required)")
	_ = downloadResumeCmd.MarkFlagRequired("user-id")
	_ = downloadResumeCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(showResumeCmd)
	rootCmd.AddCommand(updateResumeCmd)
	rootCmd.AddCommand(downloadResumeCmd)
}

func runShowResume(_ *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(showUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	ctx := context.Background()
	svc, _, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	record, err := svc.GetResume(ctx, userID)
	if err != nil {
		return err
	}
	return printJSON(record)
}

func runUpdateResume(_ *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(updateUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	input := career.ResumeUpdateInput{Extension: updateExtension}
	if updateContentFile != "" {
		data, err := os.ReadFile(updateContentFile)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		if err := json.Unmarshal(data, &input.Content); err != nil {
			return fmt.Errorf("failed to parse content JSON: %w", err)
		}
	}

	ctx := context.Background()
	svc, _, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	record, err := svc.UpdateResume(ctx, userID, input)
	if err != nil {
		return err
	}
	return printJSON(record)
}

func runDownloadResume(_ *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(downloadUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	ctx := context.Background()
	svc, _, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	obj, err := svc.DownloadResume(ctx, userID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(downloadOut, obj.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote %d bytes to %s (%s)\n", len(obj.Data), downloadOut, obj.ContentType)
	return nil
}
