package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const suggestionColumns = `id, user_id, job, report, resume_version, status, created_at, updated_at`

// CreateSuggestion records a completed job analysis for a user.
func (db *DB) CreateSuggestion(ctx context.Context, input *SuggestionCreateInput) (*SuggestionRecord, error) {
	jobJSON, err := json.Marshal(input.Job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job posting: %w", err)
	}
	reportJSON, err := json.Marshal(input.Report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO suggestions (user_id, job, report, resume_version, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+suggestionColumns,
		input.UserID, jobJSON, reportJSON, input.ResumeVersion, SuggestionStatusCompleted,
	)

	record, err := scanSuggestion(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}
	return record, nil
}

// GetSuggestionByID retrieves one suggestion scoped to its owner, or nil
// if the user has no suggestion with this ID.
func (db *DB) GetSuggestionByID(ctx context.Context, userID, suggestionID uuid.UUID) (*SuggestionRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE id = $1 AND user_id = $2`,
		suggestionID, userID,
	)

	record, err := scanSuggestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}
	return record, nil
}

// ListSuggestions retrieves one page of a user's suggestions, newest
// first, with pagination metadata.
func (db *DB) ListSuggestions(ctx context.Context, userID uuid.UUID, page, limit int) ([]SuggestionRecord, PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int
	if err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM suggestions WHERE user_id = $1`,
		userID,
	).Scan(&total); err != nil {
		return nil, PageMeta{}, fmt.Errorf("failed to count suggestions: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+suggestionColumns+`
		 FROM suggestions WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, (page-1)*limit,
	)
	if err != nil {
		return nil, PageMeta{}, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	suggestions := make([]SuggestionRecord, 0, limit)
	for rows.Next() {
		record, err := scanSuggestion(rows)
		if err != nil {
			return nil, PageMeta{}, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		suggestions = append(suggestions, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, PageMeta{}, fmt.Errorf("failed to list suggestions: %w", err)
	}

	return suggestions, NewPageMeta(page, limit, total), nil
}

// DeleteSuggestion removes one suggestion scoped to its owner. Returns
// false if the user has no suggestion with this ID.
func (db *DB) DeleteSuggestion(ctx context.Context, userID, suggestionID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM suggestions WHERE id = $1 AND user_id = $2`,
		suggestionID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete suggestion: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func scanSuggestion(row pgx.Row) (*SuggestionRecord, error) {
	var s SuggestionRecord
	var jobJSON, reportJSON []byte

	err := row.Scan(&s.ID, &s.UserID, &jobJSON, &reportJSON,
		&s.ResumeVersion, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(jobJSON, &s.Job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job posting: %w", err)
	}
	if err := json.Unmarshal(reportJSON, &s.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &s, nil
}
