package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dev-rohit-gupta/resume-buddy/internal/dateutil"
)

const jobStatsColumns = `user_id, total_matched, this_week_matched, previous_week_matched, created_at, updated_at`

// GetJobStats retrieves a user's match stats, or nil if no match was
// ever recorded. Weekly counters are normalized to the current week.
func (db *DB) GetJobStats(ctx context.Context, userID uuid.UUID) (*JobStats, error) {
	var s JobStats
	err := db.pool.QueryRow(ctx,
		`SELECT `+jobStatsColumns+` FROM job_stats WHERE user_id = $1`,
		userID,
	).Scan(&s.UserID, &s.TotalMatched, &s.ThisWeekMatched, &s.PreviousWeekMatched,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job stats: %w", err)
	}

	normalized := s.Normalized(time.Now())
	return &normalized, nil
}

// RecordMatch increments a user's match counters in one atomic upsert.
// When the row was last touched before the current week started, the
// weekly counter rolls over as part of the same statement, so two
// concurrent matches never double-roll or lose an increment.
func (db *DB) RecordMatch(ctx context.Context, userID uuid.UUID) (*JobStats, error) {
	weekStart := dateutil.StartOfWeek(time.Now())

	var s JobStats
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_stats (user_id, total_matched, this_week_matched, previous_week_matched)
		 VALUES ($1, 1, 1, 0)
		 ON CONFLICT (user_id) DO UPDATE SET
		     total_matched = job_stats.total_matched + 1,
		     previous_week_matched = CASE
		         WHEN job_stats.updated_at < $3 THEN 0
		         WHEN job_stats.updated_at < $2 THEN job_stats.this_week_matched
		         ELSE job_stats.previous_week_matched
		     END,
		     this_week_matched = CASE
		         WHEN job_stats.updated_at < $2 THEN 1
		         ELSE job_stats.this_week_matched + 1
		     END,
		     updated_at = NOW()
		 RETURNING `+jobStatsColumns,
		userID, weekStart, weekStart.AddDate(0, 0, -7),
	).Scan(&s.UserID, &s.TotalMatched, &s.ThisWeekMatched, &s.PreviousWeekMatched,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record match: %w", err)
	}
	return &s, nil
}
