package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrVersionConflict is returned when a conditional resume update loses
// to a concurrent writer: the row exists but its version no longer
// matches the version the caller read.
var ErrVersionConflict = errors.New("resume version conflict")

const resumeColumns = `id, user_id, storage_key, resource_type, extension, content,
	        ats_score, best_role, nearest_next_role, skill_gaps,
	        analysed_at, version, created_at, updated_at`

// CreateResume stores a user's resume. Each user has at most one; a
// second insert for the same user fails on the unique constraint.
func (db *DB) CreateResume(ctx context.Context, input *ResumeCreateInput) (*ResumeRecord, error) {
	contentJSON, err := json.Marshal(input.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume content: %w", err)
	}
	gapsJSON, err := json.Marshal(input.Profile.SkillGaps)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skill gaps: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, storage_key, resource_type, extension, content,
		                      ats_score, best_role, nearest_next_role, skill_gaps,
		                      analysed_at, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), 1)
		 RETURNING `+resumeColumns,
		input.UserID, input.StorageKey, input.ResourceType, input.Extension, contentJSON,
		input.ATSScore, input.Profile.BestRole, input.Profile.NearestNextRole, gapsJSON,
	)

	record, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return record, nil
}

// GetResumeByUserID retrieves a user's resume, or nil if none is stored.
func (db *DB) GetResumeByUserID(ctx context.Context, userID uuid.UUID) (*ResumeRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1`,
		userID,
	)

	record, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return record, nil
}

// GetResumeStorageKey retrieves only the storage key of a user's resume,
// or "" if none is stored.
func (db *DB) GetResumeStorageKey(ctx context.Context, userID uuid.UUID) (string, error) {
	var key string
	err := db.pool.QueryRow(ctx,
		`SELECT storage_key FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get resume storage key: %w", err)
	}
	return key, nil
}

// UpdateResume applies a conditional update: the write only lands if the
// stored version still equals update.ExpectedVersion. A lost race returns
// ErrVersionConflict; a missing row returns (nil, nil).
func (db *DB) UpdateResume(ctx context.Context, userID uuid.UUID, update *ResumeUpdate) (*ResumeRecord, error) {
	contentJSON, err := json.Marshal(update.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume content: %w", err)
	}

	bump := 0
	if update.BumpVersion {
		bump = 1
	}

	var row pgx.Row
	if update.Profile != nil && update.ATSScore != nil {
		gapsJSON, err := json.Marshal(update.Profile.SkillGaps)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal skill gaps: %w", err)
		}
		row = db.pool.QueryRow(ctx,
			`UPDATE resumes
			 SET storage_key = $3, resource_type = $4, extension = $5, content = $6,
			     ats_score = $7, best_role = $8, nearest_next_role = $9, skill_gaps = $10,
			     analysed_at = NOW(), version = version + $11, updated_at = NOW()
			 WHERE user_id = $1 AND version = $2
			 RETURNING `+resumeColumns,
			userID, update.ExpectedVersion,
			update.StorageKey, update.ResourceType, update.Extension, contentJSON,
			*update.ATSScore, update.Profile.BestRole, update.Profile.NearestNextRole, gapsJSON,
			bump,
		)
	} else {
		row = db.pool.QueryRow(ctx,
			`UPDATE resumes
			 SET storage_key = $3, resource_type = $4, extension = $5, content = $6,
			     version = version + $7, updated_at = NOW()
			 WHERE user_id = $1 AND version = $2
			 RETURNING `+resumeColumns,
			userID, update.ExpectedVersion,
			update.StorageKey, update.ResourceType, update.Extension, contentJSON,
			bump,
		)
	}

	record, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing resume from a lost race.
			exists, existsErr := db.resumeExists(ctx, userID)
			if existsErr != nil {
				return nil, existsErr
			}
			if exists {
				return nil, ErrVersionConflict
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return record, nil
}

// DeleteResume removes a user's resume. Returns false if none existed.
func (db *DB) DeleteResume(ctx context.Context, userID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE user_id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func (db *DB) resumeExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM resumes WHERE user_id = $1)`,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check resume existence: %w", err)
	}
	return exists, nil
}

func scanResume(row pgx.Row) (*ResumeRecord, error) {
	var r ResumeRecord
	var contentJSON, gapsJSON []byte

	err := row.Scan(&r.ID, &r.UserID, &r.StorageKey, &r.ResourceType, &r.Extension,
		&contentJSON, &r.ATSScore, &r.BestRole, &r.NearestNextRole, &gapsJSON,
		&r.AnalysedAt, &r.Version, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(contentJSON, &r.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume content: %w", err)
	}
	if gapsJSON != nil {
		_ = json.Unmarshal(gapsJSON, &r.SkillGaps)
	}
	if r.SkillGaps == nil {
		r.SkillGaps = []string{}
	}
	r.Content.Normalize()

	return &r, nil
}
