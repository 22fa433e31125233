package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dev-rohit-gupta/resume-buddy/internal/career"
	"github.com/dev-rohit-gupta/resume-buddy/internal/extraction"
)

var uploadResumeCmd = &cobra.Command{
	Use:   "upload-resume",
	Short: "Upload a resume file and run the full analysis pipeline",
	Long:  "Extract structured content from a PDF or DOCX resume, derive the career profile and ATS score, and store the result. Replaces the user's existing resume if one exists.",
	RunE:  runUploadResume,
}

var (
	uploadUserID string
	uploadFile   string
)

func init() {
	uploadResumeCmd.Flags().StringVar(&uploadUserID, "user-id", "", "User UUID (required)")
	uploadResumeCmd.Flags().StringVarP(&uploadFile, "file", "f", "", "Path to resume file, .pdf or .docx (required)")
	_ = uploadResumeCmd.MarkFlagRequired("user-id")
	_ = uploadResumeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(uploadResumeCmd)
}

func mimeTypeForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extraction.MIMEPDF, nil
	case ".docx":
		return extraction.MIMEDocx, nil
	default:
		return "", fmt.Errorf("unsupported file type %q (want .pdf or .docx)", filepath.Ext(path))
	}
}

func runUploadResume(_ *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(uploadUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	mimeType, err := mimeTypeForPath(uploadFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(uploadFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	ctx := context.Background()
	svc, log, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	upload := career.FileUpload{Data: data, MIMEType: mimeType}

	// First upload creates the record; later uploads replace it in place.
	_, err = svc.GetResume(ctx, userID)
	var notFound *career.NotFoundError
	switch {
	case err == nil:
		log.Info("replacing existing resume", zap.String("user_id", userID.String()))
		record, err := svc.UpdateResumeFile(ctx, userID, upload)
		if err != nil {
			return err
		}
		return printJSON(record)
	case errors.As(err, &notFound):
		record, err := svc.CreateResume(ctx, userID, upload)
		if err != nil {
			return err
		}
		return printJSON(record)
	default:
		return err
	}
}
