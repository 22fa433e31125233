package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

// Suggestion statuses.
const (
	SuggestionStatusCompleted = "completed"
	SuggestionStatusFailed    = "failed"
)

// SuggestionRecord is one stored job analysis: the posting that was
// analyzed, the report the model produced, and the resume version the
// report was computed against. Reports are never recomputed in place;
// a stale ResumeVersion just tells the reader the resume moved on.
type SuggestionRecord struct {
	ID            uuid.UUID                 `json:"id"`
	UserID        uuid.UUID                 `json:"user_id"`
	Job           types.JobPosting          `json:"job"`
	Report        types.CompatibilityReport `json:"report"`
	ResumeVersion int                       `json:"resume_version"`
	Status        string                    `json:"status"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

// SuggestionCreateInput is used when recording a completed analysis.
type SuggestionCreateInput struct {
	UserID        uuid.UUID
	Job           types.JobPosting
	Report        types.CompatibilityReport
	ResumeVersion int
}

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPageMeta computes pagination metadata for a page/limit window over
// total items.
func NewPageMeta(page, limit, total int) PageMeta {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	skip := (page - 1) * limit
	return PageMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: skip+limit < total,
		HasPrevPage: page > 1,
	}
}
