package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dev-rohit-gupta/resume-buddy/internal/db"
)

var listSuggestionsCmd = &cobra.Command{
	Use:   "list-suggestions",
	Short: "List stored job suggestions for a user, newest first",
	RunE:  runListSuggestions,
}

var showSuggestionCmd = &cobra.Command{
	Use:   "show-suggestion",
	Short: "Print one stored suggestion",
	RunE:  runShowSuggestion,
}

var deleteSuggestionCmd = &cobra.Command{
	Use:   "delete-suggestion",
	Short: "Delete a stored suggestion",
	RunE:  runDeleteSuggestion,
}

var (
	suggestionsUserID string
	suggestionsPage   int
	suggestionsLimit  int
	suggestionID      string
)

func init() {
	listSuggestionsCmd.Flags().StringVar(&suggestionsUserID, "user-id", "", "User UUID (required)")
	listSuggestionsCmd.Flags().IntVar(&suggestionsPage, "page", 1, "Page number")
	listSuggestionsCmd.Flags().IntVar(&suggestionsLimit, "limit", 10, "Page size")
	_ = listSuggestionsCmd.MarkFlagRequired("user-id")

	for _, cmd := range []*cobra.Command{showSuggestionCmd, deleteSuggestionCmd} {
		cmd.Flags().StringVar(&suggestionsUserID, "user-id", "", "User UUID (required)")
		cmd.Flags().StringVar(&suggestionID, "id", "", "Suggestion UUID (required)")
		_ = cmd.MarkFlagRequired("user-id")
		_ = cmd.MarkFlagRequired("id")
	}

	rootCmd.AddCommand(listSuggestionsCmd)
	rootCmd.AddCommand(showSuggestionCmd)
	rootCmd.AddCommand(deleteSuggestionCmd)
}

func parseSuggestionIDs() (uuid.UUID, uuid.UUID, error) {
	userID, err := uuid.Parse(suggestionsUserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid user ID: %w", err)
	}
	id, err := uuid.Parse(suggestionID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid suggestion ID: %w", err)
	}
	return userID, id, nil
}

func runListSuggestions(_ *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(suggestionsUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	ctx := context.Background()
	svc, _, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	records, meta, err := svc.ListSuggestions(ctx, userID, suggestionsPage, suggestionsLimit)
	if err != nil {
		return err
	}
	return printJSON(struct {
		Suggestions []db.SuggestionRecord `json:"suggestions"`
		Meta        db.PageMeta           `json:"meta"`
	}{Suggestions: records, Meta: meta})
}

func runShowSuggestion(_ *cobra.Command, _ []string) error {
	userID, id, err := parseSuggestionIDs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc, _, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	suggestion, err := svc.GetSuggestion(ctx, userID, id)
	if err != nil {
		return err
	}
	return printJSON(suggestion)
}

func runDeleteSuggestion(_ *cobra.Command, _ []string) error {
	userID, id, err := parseSuggestionIDs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc, _, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.DeleteSuggestion(ctx, userID, id); err != nil {
		return err
	}
	fmt.Println("Suggestion deleted.")
	return nil
}
