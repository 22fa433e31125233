package career

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dev-rohit-gupta/resume-buddy/internal/db"
	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

// AnalyzeJob grades a posting against the user's stored resume, records
// the result as a suggestion pinned to the resume version it was computed
// from, and counts qualifying matches toward the user's stats.
func (s *Service) AnalyzeJob(ctx context.Context, userID uuid.UUID, job *types.JobPosting) (*db.SuggestionRecord, error) {
	record, err := s.GetResume(ctx, userID)
	if err != nil {
		return nil, err
	}

	report, err := s.ai.AnalyzeJob(ctx, job, &record.Content)
	if err != nil {
		return nil, err
	}

	suggestion, err := s.store.CreateSuggestion(ctx, &db.SuggestionCreateInput{
		UserID:        userID,
		Job:           *job,
		Report:        *report,
		ResumeVersion: record.Version,
	})
	if err != nil {
		return nil, err
	}

	if report.Stats.Match.Qualifies() {
		// The suggestion is already stored; a failed counter update is
		// not worth failing the whole analysis over.
		if _, err := s.store.RecordMatch(ctx, userID); err != nil {
			s.logger.Warn("failed to record match",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("job analyzed",
		zap.String("user_id", userID.String()),
		zap.String("match", string(report.Stats.Match)),
		zap.Int("resume_version", record.Version))
	return suggestion, nil
}

// GetSuggestion retrieves one of the user's stored suggestions.
func (s *Service) GetSuggestion(ctx context.Context, userID, suggestionID uuid.UUID) (*db.SuggestionRecord, error) {
	suggestion, err := s.store.GetSuggestionByID(ctx, userID, suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, &NotFoundError{Resource: "suggestion"}
	}
	return suggestion, nil
}

// ListSuggestions retrieves one page of the user's suggestions, newest
// first.
func (s *Service) ListSuggestions(ctx context.Context, userID uuid.UUID, page, limit int) ([]db.SuggestionRecord, db.PageMeta, error) {
	return s.store.ListSuggestions(ctx, userID, page, limit)
}

// DeleteSuggestion removes one of the user's stored suggestions.
func (s *Service) DeleteSuggestion(ctx context.Context, userID, suggestionID uuid.UUID) error {
	deleted, err := s.store.DeleteSuggestion(ctx, userID, suggestionID)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Resource: "suggestion"}
	}
	return nil
}
