// Package career is the service layer: it owns the resume lifecycle
// (upload, extraction, versioned updates), job analysis with suggestion
// history, and the per-user match stats behind the dashboard.
package career

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dev-rohit-gupta/resume-buddy/internal/db"
	"github.com/dev-rohit-gupta/resume-buddy/internal/engine"
	"github.com/dev-rohit-gupta/resume-buddy/internal/storage"
	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

// Store is the persistence surface the service needs. *db.DB satisfies it.
type Store interface {
	CreateResume(ctx context.Context, input *db.ResumeCreateInput) (*db.ResumeRecord, error)
	GetResumeByUserID(ctx context.Context, userID uuid.UUID) (*db.ResumeRecord, error)
	GetResumeStorageKey(ctx context.Context, userID uuid.UUID) (string, error)
	UpdateResume(ctx context.Context, userID uuid.UUID, update *db.ResumeUpdate) (*db.ResumeRecord, error)

	CreateSuggestion(ctx context.Context, input *db.SuggestionCreateInput) (*db.SuggestionRecord, error)
	GetSuggestionByID(ctx context.Context, userID, suggestionID uuid.UUID) (*db.SuggestionRecord, error)
	ListSuggestions(ctx context.Context, userID uuid.UUID, page, limit int) ([]db.SuggestionRecord, db.PageMeta, error)
	DeleteSuggestion(ctx context.Context, userID, suggestionID uuid.UUID) (bool, error)

	GetJobStats(ctx context.Context, userID uuid.UUID) (*db.JobStats, error)
	RecordMatch(ctx context.Context, userID uuid.UUID) (*db.JobStats, error)
}

// Analyzer is the inference surface the service needs. *engine.Engine
// satisfies it.
type Analyzer interface {
	ExtractResume(ctx context.Context, in engine.ExtractInput) (*types.StructuredResume, error)
	BuildCareerProfile(ctx context.Context, resume *types.StructuredResume) (*types.CareerProfile, error)
	AnalyzeJob(ctx context.Context, job *types.JobPosting, resume *types.StructuredResume) (*types.CompatibilityReport, error)
}

// Service wires persistence, object storage, and inference together.
type Service struct {
	store   Store
	objects storage.ObjectStore
	ai      Analyzer
	logger  *zap.Logger
}

// NewService creates the career service. A nil logger disables logging.
func NewService(store Store, objects storage.ObjectStore, ai Analyzer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, objects: objects, ai: ai, logger: logger}
}
