package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

// ResumeRecord is the stored resume row: one per user. Content is the
// structured extraction; the career analysis columns are derived from it
// and never written directly by callers.
type ResumeRecord struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	// Uploaded file reference
	StorageKey   string `json:"storage_key"`
	ResourceType string `json:"resource_type"`
	Extension    string `json:"extension"`

	// Extracted content
	Content types.StructuredResume `json:"content"`

	// Career analysis
	ATSScore        int        `json:"ats_score"`
	BestRole        string     `json:"best_role"`
	NearestNextRole string     `json:"nearest_next_role"`
	SkillGaps       []string   `json:"skill_gaps"`
	AnalysedAt      *time.Time `json:"analysed_at,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResumeCreateInput is used when storing a user's first resume.
type ResumeCreateInput struct {
	UserID       uuid.UUID
	StorageKey   string
	ResourceType string
	Extension    string
	Content      types.StructuredResume
	ATSScore     int
	Profile      types.CareerProfile
}

// ResumeUpdate carries the full post-merge state to persist. Version is
// the version the caller read; the write fails if another writer bumped
// it in between.
type ResumeUpdate struct {
	StorageKey   string
	ResourceType string
	Extension    string
	Content      types.StructuredResume

	// Present only when the content changed and was re-analysed.
	ATSScore *int
	Profile  *types.CareerProfile

	BumpVersion     bool
	ExpectedVersion int
}
