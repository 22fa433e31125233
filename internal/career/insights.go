package career

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dev-rohit-gupta/resume-buddy/internal/db"
)

// resumeDownloadPath is the client-facing path for the stored resume file.
const resumeDownloadPath = "me/resume"

// GetCareerStats retrieves a user's match stats. A user with no recorded
// matches gets zeroes, not an error.
func (s *Service) GetCareerStats(ctx context.Context, userID uuid.UUID) (*db.JobStats, error) {
	stats, err := s.store.GetJobStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &db.JobStats{UserID: userID}, nil
	}
	return stats, nil
}

// Dashboard is the combined view the client renders on login.
type Dashboard struct {
	Resume   ResumeSummary `json:"resume"`
	Career   CareerSummary `json:"career"`
	JobStats StatsSummary  `json:"jobStats"`
}

// ResumeSummary points at the stored resume file.
type ResumeSummary struct {
	URL     string `json:"url"`
	Version int    `json:"version"`
}

// CareerSummary is the stored career analysis.
type CareerSummary struct {
	ATSScore        int      `json:"atsScore"`
	BestRole        string   `json:"bestRole"`
	NearestNextRole string   `json:"nearestNextRole"`
	SkillGaps       []string `json:"skillGaps"`
}

// StatsSummary is the match-count view.
type StatsSummary struct {
	Total        int `json:"total"`
	ThisWeek     int `json:"thisWeek"`
	PreviousWeek int `json:"previousWeek"`
}

// GetDashboard fetches the resume and match stats concurrently and
// composes the dashboard view. A missing resume fails the dashboard;
// missing stats just render as zeroes.
func (s *Service) GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	var (
		record *db.ResumeRecord
		stats  *db.JobStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		record, err = s.GetResume(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.GetCareerStats(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dashboard{
		Resume: ResumeSummary{
			URL:     resumeDownloadPath,
			Version: record.Version,
		},
		Career: CareerSummary{
			ATSScore:        record.ATSScore,
			BestRole:        record.BestRole,
			NearestNextRole: record.NearestNextRole,
			SkillGaps:       record.SkillGaps,
		},
		JobStats: StatsSummary{
			Total:        stats.TotalMatched,
			ThisWeek:     stats.ThisWeekMatched,
			PreviousWeek: stats.PreviousWeekMatched,
		},
	}, nil
}
