package career

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dev-rohit-gupta/resume-buddy/internal/db"
	"github.com/dev-rohit-gupta/resume-buddy/internal/engine"
	"github.com/dev-rohit-gupta/resume-buddy/internal/extraction"
	"github.com/dev-rohit-gupta/resume-buddy/internal/scoring"
	"github.com/dev-rohit-gupta/resume-buddy/internal/storage"
	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

// FileUpload is an uploaded resume document.
type FileUpload struct {
	Data     []byte
	MIMEType string
}

// uploadResourceType is the stored resource type for raw resume files.
const uploadResourceType = "raw"

func storageKeyFor(userID uuid.UUID) string {
	return "resumes/" + userID.String()
}

// extractContent turns an uploaded file into structured content. Text is
// always extracted locally first; the raw file only travels to the model
// when local extraction is low-confidence.
func (s *Service) extractContent(ctx context.Context, upload FileUpload) (*types.StructuredResume, error) {
	text, err := extraction.ExtractText(upload.Data, upload.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	confidence := extraction.ConfidenceScore(text)
	in := engine.ExtractInput{Text: text}
	if confidence < extraction.RoutingThreshold {
		in.File = &engine.FileAttachment{Data: upload.Data, MIMEType: upload.MIMEType}
	}

	s.logger.Debug("routing resume extraction",
		zap.Float64("confidence", confidence),
		zap.Bool("with_file", in.File != nil))

	resume, err := s.ai.ExtractResume(ctx, in)
	if err != nil {
		return nil, err
	}

	resume.Metadata.SourceFileType = extraction.FileTypeFor(upload.MIMEType)
	resume.Metadata.ConfidenceScore = confidence
	return resume, nil
}

// ExtractAndScoreResume runs the full analysis pipeline on an uploaded
// file without persisting anything: structured content, career profile,
// and ATS score.
func (s *Service) ExtractAndScoreResume(ctx context.Context, upload FileUpload) (*types.StructuredResume, *types.CareerProfile, int, error) {
	content, err := s.extractContent(ctx, upload)
	if err != nil {
		return nil, nil, 0, err
	}

	profile, err := s.ai.BuildCareerProfile(ctx, content)
	if err != nil {
		return nil, nil, 0, err
	}
	return content, profile, scoring.Score(profile.Signals), nil
}

// CreateResume stores a user's first resume: the raw file goes to object
// storage, the extracted content and its career analysis go to the
// database at version 1.
func (s *Service) CreateResume(ctx context.Context, userID uuid.UUID, upload FileUpload) (*db.ResumeRecord, error) {
	content, profile, atsScore, err := s.ExtractAndScoreResume(ctx, upload)
	if err != nil {
		return nil, err
	}

	key := storageKeyFor(userID)
	if err := s.objects.Put(ctx, key, storage.Object{Data: upload.Data, ContentType: upload.MIMEType}); err != nil {
		return nil, err
	}

	record, err := s.store.CreateResume(ctx, &db.ResumeCreateInput{
		UserID:       userID,
		StorageKey:   key,
		ResourceType: uploadResourceType,
		Extension:    extraction.FileTypeFor(upload.MIMEType),
		Content:      *content,
		ATSScore:     atsScore,
		Profile:      *profile,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("resume created",
		zap.String("user_id", userID.String()),
		zap.Int("ats_score", atsScore),
		zap.String("best_role", profile.BestRole))
	return record, nil
}

// GetResume retrieves a user's stored resume.
func (s *Service) GetResume(ctx context.Context, userID uuid.UUID) (*db.ResumeRecord, error) {
	record, err := s.store.GetResumeByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &NotFoundError{Resource: "resume"}
	}
	return record, nil
}

// ResumeUpdateInput is a partial update to a stored resume. Content is a
// partial structured-resume document merged over the stored one; the
// string fields replace their stored values when non-empty.
type ResumeUpdateInput struct {
	Content      map[string]any `json:"content,omitempty"`
	Extension    string         `json:"extension,omitempty"`
	ResourceType string         `json:"resourceType,omitempty"`
	StorageKey   string         `json:"key,omitempty"`
}

func (in *ResumeUpdateInput) effective() bool {
	return len(in.Content) > 0 || in.Extension != "" || in.ResourceType != "" || in.StorageKey != ""
}

// UpdateResume merges a partial update into the stored resume. Touching
// content, extension, resource type, or storage key bumps the version;
// touching content also re-runs the career analysis on the merged result.
// The write is conditional on the version read here, so two racing
// updates cannot silently overwrite each other.
func (s *Service) UpdateResume(ctx context.Context, userID uuid.UUID, input ResumeUpdateInput) (*db.ResumeRecord, error) {
	if !input.effective() {
		return nil, &NoEffectiveUpdateError{}
	}

	record, err := s.GetResume(ctx, userID)
	if err != nil {
		return nil, err
	}

	update := &db.ResumeUpdate{
		StorageKey:      record.StorageKey,
		ResourceType:    record.ResourceType,
		Extension:       record.Extension,
		Content:         record.Content,
		ExpectedVersion: record.Version,
	}
	if input.StorageKey != "" {
		update.StorageKey = input.StorageKey
	}
	if input.ResourceType != "" {
		update.ResourceType = input.ResourceType
	}
	if input.Extension != "" {
		update.Extension = input.Extension
	}

	if len(input.Content) > 0 {
		merged, err := mergeContent(record.Content, input.Content)
		if err != nil {
			return nil, err
		}
		update.Content = *merged

		profile, err := s.ai.BuildCareerProfile(ctx, merged)
		if err != nil {
			return nil, err
		}
		atsScore := scoring.Score(profile.Signals)
		update.Profile = profile
		update.ATSScore = &atsScore
	}

	update.BumpVersion = true
	// Keep the content's own version stamp in step with the record
	// version, as a file replacement does.
	update.Content.Metadata.ResumeVersion = record.Version + 1

	return s.applyUpdate(ctx, userID, update)
}

func (s *Service) applyUpdate(ctx context.Context, userID uuid.UUID, update *db.ResumeUpdate) (*db.ResumeRecord, error) {
	updated, err := s.store.UpdateResume(ctx, userID, update)
	if err != nil {
		if errors.Is(err, db.ErrVersionConflict) {
			return nil, &ConflictError{}
		}
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "resume"}
	}

	s.logger.Info("resume updated",
		zap.String("user_id", userID.String()),
		zap.Int("version", updated.Version))
	return updated, nil
}

// mergeContent merges a partial content document over the stored content
// and decodes the result back into a validated StructuredResume.
func mergeContent(current types.StructuredResume, partial map[string]any) (*types.StructuredResume, error) {
	currentJSON, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stored content: %w", err)
	}
	var currentDoc map[string]any
	if err := json.Unmarshal(currentJSON, &currentDoc); err != nil {
		return nil, fmt.Errorf("failed to decode stored content: %w", err)
	}

	mergedDoc := deepMerge(currentDoc, partial)

	mergedJSON, err := json.Marshal(mergedDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged content: %w", err)
	}
	var merged types.StructuredResume
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		return nil, fmt.Errorf("invalid content update: %w", err)
	}

	merged.Normalize()
	// The partial document cannot touch the version stamp; the caller
	// sets it to the post-update version.
	merged.Metadata.ResumeVersion = current.Metadata.ResumeVersion
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content update: %w", err)
	}
	return &merged, nil
}

// UpdateResumeFile replaces the stored resume file, re-extracts its
// content, and re-runs the career analysis. The object is overwritten
// under the existing storage key.
func (s *Service) UpdateResumeFile(ctx context.Context, userID uuid.UUID, upload FileUpload) (*db.ResumeRecord, error) {
	record, err := s.GetResume(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.objects.Put(ctx, record.StorageKey, storage.Object{Data: upload.Data, ContentType: upload.MIMEType}); err != nil {
		return nil, err
	}

	content, profile, atsScore, err := s.ExtractAndScoreResume(ctx, upload)
	if err != nil {
		return nil, err
	}
	content.Metadata.ResumeVersion = record.Version + 1

	return s.applyUpdate(ctx, userID, &db.ResumeUpdate{
		StorageKey:      record.StorageKey,
		ResourceType:    uploadResourceType,
		Extension:       extraction.FileTypeFor(upload.MIMEType),
		Content:         *content,
		ATSScore:        &atsScore,
		Profile:         profile,
		BumpVersion:     true,
		ExpectedVersion: record.Version,
	})
}

// DownloadResume retrieves the original uploaded resume file.
func (s *Service) DownloadResume(ctx context.Context, userID uuid.UUID) (*storage.Object, error) {
	key, err := s.store.GetResumeStorageKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, &NotFoundError{Resource: "resume"}
	}

	obj, err := s.objects.Get(ctx, key)
	if err != nil {
		var notFound *storage.NotFoundError
		if errors.As(err, &notFound) {
			return nil, &NotFoundError{Resource: "resume file"}
		}
		return nil, err
	}
	return obj, nil
}
