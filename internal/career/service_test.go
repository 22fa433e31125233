package career

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-rohit-gupta/resume-buddy/internal/db"
	"github.com/dev-rohit-gupta/resume-buddy/internal/engine"
	"github.com/dev-rohit-gupta/resume-buddy/internal/extraction"
	"github.com/dev-rohit-gupta/resume-buddy/internal/storage"
	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

// -----------------------------------------------------------------------------
// Fakes
// -----------------------------------------------------------------------------

type fakeStore struct {
	resume           *db.ResumeRecord
	suggestions      []db.SuggestionRecord
	stats            *db.JobStats
	recordMatchCalls int
	recordMatchErr   error
}

// snapshot returns a copy of the stored record. The real store builds a
// fresh record per query, so callers never alias the stored row.
func (f *fakeStore) snapshot() *db.ResumeRecord {
	record := *f.resume
	return &record
}

func (f *fakeStore) CreateResume(_ context.Context, input *db.ResumeCreateInput) (*db.ResumeRecord, error) {
	now := time.Now()
	analysedAt := now
	f.resume = &db.ResumeRecord{
		ID:              uuid.New(),
		UserID:          input.UserID,
		StorageKey:      input.StorageKey,
		ResourceType:    input.ResourceType,
		Extension:       input.Extension,
		Content:         input.Content,
		ATSScore:        input.ATSScore,
		BestRole:        input.Profile.BestRole,
		NearestNextRole: input.Profile.NearestNextRole,
		SkillGaps:       input.Profile.SkillGaps,
		AnalysedAt:      &analysedAt,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return f.snapshot(), nil
}

func (f *fakeStore) GetResumeByUserID(_ context.Context, userID uuid.UUID) (*db.ResumeRecord, error) {
	if f.resume == nil || f.resume.UserID != userID {
		return nil, nil
	}
	return f.snapshot(), nil
}

func (f *fakeStore) GetResumeStorageKey(_ context.Context, userID uuid.UUID) (string, error) {
	if f.resume == nil || f.resume.UserID != userID {
		return "", nil
	}
	return f.resume.StorageKey, nil
}

func (f *fakeStore) UpdateResume(_ context.Context, userID uuid.UUID, update *db.ResumeUpdate) (*db.ResumeRecord, error) {
	if f.resume == nil || f.resume.UserID != userID {
		return nil, nil
	}
	if f.resume.Version != update.ExpectedVersion {
		return nil, db.ErrVersionConflict
	}

	f.resume.StorageKey = update.StorageKey
	f.resume.ResourceType = update.ResourceType
	f.resume.Extension = update.Extension
	f.resume.Content = update.Content
	if update.Profile != nil && update.ATSScore != nil {
		f.resume.ATSScore = *update.ATSScore
		f.resume.BestRole = update.Profile.BestRole
		f.resume.NearestNextRole = update.Profile.NearestNextRole
		f.resume.SkillGaps = update.Profile.SkillGaps
		analysedAt := time.Now()
		f.resume.AnalysedAt = &analysedAt
	}
	if update.BumpVersion {
		f.resume.Version++
	}
	f.resume.UpdatedAt = time.Now()
	return f.snapshot(), nil
}

func (f *fakeStore) CreateSuggestion(_ context.Context, input *db.SuggestionCreateInput) (*db.SuggestionRecord, error) {
	record := db.SuggestionRecord{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Job:           input.Job,
		Report:        input.Report,
		ResumeVersion: input.ResumeVersion,
		Status:        db.SuggestionStatusCompleted,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	f.suggestions = append(f.suggestions, record)
	return &record, nil
}

func (f *fakeStore) GetSuggestionByID(_ context.Context, userID, suggestionID uuid.UUID) (*db.SuggestionRecord, error) {
	for i := range f.suggestions {
		if f.suggestions[i].ID == suggestionID && f.suggestions[i].UserID == userID {
			return &f.suggestions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListSuggestions(_ context.Context, userID uuid.UUID, page, limit int) ([]db.SuggestionRecord, db.PageMeta, error) {
	var matched []db.SuggestionRecord
	for _, sg := range f.suggestions {
		if sg.UserID == userID {
			matched = append(matched, sg)
		}
	}
	return matched, db.NewPageMeta(page, limit, len(matched)), nil
}

func (f *fakeStore) DeleteSuggestion(_ context.Context, userID, suggestionID uuid.UUID) (bool, error) {
	for i := range f.suggestions {
		if f.suggestions[i].ID == suggestionID && f.suggestions[i].UserID == userID {
			f.suggestions = append(f.suggestions[:i], f.suggestions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) GetJobStats(_ context.Context, userID uuid.UUID) (*db.JobStats, error) {
	if f.stats == nil || f.stats.UserID != userID {
		return nil, nil
	}
	return f.stats, nil
}

func (f *fakeStore) RecordMatch(_ context.Context, userID uuid.UUID) (*db.JobStats, error) {
	f.recordMatchCalls++
	if f.recordMatchErr != nil {
		return nil, f.recordMatchErr
	}
	if f.stats == nil {
		f.stats = &db.JobStats{UserID: userID}
	}
	f.stats.TotalMatched++
	f.stats.ThisWeekMatched++
	return f.stats, nil
}

type fakeObjects struct {
	objects map[string]storage.Object
	puts    int
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: make(map[string]storage.Object)}
}

func (f *fakeObjects) Put(_ context.Context, key string, obj storage.Object) error {
	f.objects[key] = obj
	f.puts++
	return nil
}

func (f *fakeObjects) Get(_ context.Context, key string) (*storage.Object, error) {
	obj, ok := f.objects[key]
	if !ok {
		return nil, &storage.NotFoundError{Key: key}
	}
	return &obj, nil
}

func (f *fakeObjects) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

type fakeAnalyzer struct {
	ExtractResumeFunc      func(ctx context.Context, in engine.ExtractInput) (*types.StructuredResume, error)
	BuildCareerProfileFunc func(ctx context.Context, resume *types.StructuredResume) (*types.CareerProfile, error)
	AnalyzeJobFunc         func(ctx context.Context, job *types.JobPosting, resume *types.StructuredResume) (*types.CompatibilityReport, error)
}

func (f *fakeAnalyzer) ExtractResume(ctx context.Context, in engine.ExtractInput) (*types.StructuredResume, error) {
	if f.ExtractResumeFunc != nil {
		return f.ExtractResumeFunc(ctx, in)
	}
	resume := &types.StructuredResume{
		Basics: types.Basics{Name: "Asha Verma"},
		Skills: types.SkillSet{Technical: []string{"Go"}},
	}
	resume.Normalize()
	return resume, nil
}

func (f *fakeAnalyzer) BuildCareerProfile(ctx context.Context, resume *types.StructuredResume) (*types.CareerProfile, error) {
	if f.BuildCareerProfileFunc != nil {
		return f.BuildCareerProfileFunc(ctx, resume)
	}
	return &types.CareerProfile{
		BestRole:        "Backend Developer",
		NearestNextRole: "Senior Backend Developer",
		SkillGaps:       []string{"Kubernetes"},
		Signals: types.EvidenceReport{
			WorkEvidence:     types.Signal{Level: 2},
			SkillApplication: types.Signal{Level: 2},
			OutcomeImpact:    types.Signal{Level: 1},
			ClarityStructure: types.Signal{Level: 2},
			Consistency:      types.Signal{Level: 2},
			Specificity:      types.Signal{Level: 1},
			EffortSignal:     types.Signal{Level: 2},
			RedFlags:         types.Signal{Level: 0},
		},
	}, nil
}

func (f *fakeAnalyzer) AnalyzeJob(ctx context.Context, job *types.JobPosting, resume *types.StructuredResume) (*types.CompatibilityReport, error) {
	if f.AnalyzeJobFunc != nil {
		return f.AnalyzeJobFunc(ctx, job, resume)
	}
	return reportWithMatch(types.MatchGood), nil
}

func reportWithMatch(match types.MatchTier) *types.CompatibilityReport {
	return &types.CompatibilityReport{
		Stats: types.ReportStats{
			Difficulty:       "Intermediate",
			CompetitionLevel: "Medium",
			Match:            match,
		},
		ATSAnalysis: types.ATSAnalysis{
			ATSScore:             70,
			SelectionProbability: "Medium",
		},
		ApplicationDecision: types.ApplicationDecision{
			ShouldApply:    true,
			Recommendation: "Apply Now",
		},
		Precautions: types.Precautions{RiskLevel: "Low"},
	}
}

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

func docxUpload(t *testing.T, body string) FileUpload {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	doc, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write([]byte("<w:document><w:body><w:p><w:r><w:t>" + body + "</w:t></w:r></w:p></w:body></w:document>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return FileUpload{Data: buf.Bytes(), MIMEType: extraction.MIMEDocx}
}

// confidentResumeBody scores above the routing threshold: education,
// experience, and skills keywords over a body longer than 1200 chars.
func confidentResumeBody() string {
	return "Asha Verma. Experience: Backend Developer at Initech, a product company. " +
		"Education: B.Tech in Computer Science. Skills: Go, PostgreSQL, Docker. " +
		strings.Repeat("Built and operated production services handling real traffic. ", 22)
}

func newTestService(store *fakeStore, objects *fakeObjects, ai *fakeAnalyzer) *Service {
	return NewService(store, objects, ai, nil)
}

// -----------------------------------------------------------------------------
// Resume lifecycle
// -----------------------------------------------------------------------------

func TestExtractAndScoreResume_PersistsNothing(t *testing.T) {
	store := &fakeStore{}
	objects := newFakeObjects()
	svc := newTestService(store, objects, &fakeAnalyzer{})

	content, profile, atsScore, err := svc.ExtractAndScoreResume(context.Background(), docxUpload(t, confidentResumeBody()))

	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", content.Basics.Name)
	assert.Equal(t, "Backend Developer", profile.BestRole)
	assert.NotZero(t, atsScore)
	assert.Nil(t, store.resume)
	assert.Empty(t, objects.objects)
}

func TestCreateResume_StoresFileAndRecord(t *testing.T) {
	store := &fakeStore{}
	objects := newFakeObjects()
	svc := newTestService(store, objects, &fakeAnalyzer{})
	userID := uuid.New()

	record, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))

	require.NoError(t, err)
	assert.Equal(t, 1, record.Version)
	assert.Equal(t, "resumes/"+userID.String(), record.StorageKey)
	assert.Equal(t, "raw", record.ResourceType)
	assert.Equal(t, "docx", record.Extension)
	assert.Equal(t, "Backend Developer", record.BestRole)
	assert.NotZero(t, record.ATSScore)

	stored, ok := objects.objects[record.StorageKey]
	require.True(t, ok, "raw file should be in object storage")
	assert.Equal(t, extraction.MIMEDocx, stored.ContentType)
}

func TestCreateResume_HighConfidenceRoutesTextOnly(t *testing.T) {
	var gotInput engine.ExtractInput
	ai := &fakeAnalyzer{
		ExtractResumeFunc: func(_ context.Context, in engine.ExtractInput) (*types.StructuredResume, error) {
			gotInput = in
			resume := &types.StructuredResume{Basics: types.Basics{Name: "Asha Verma"}}
			resume.Normalize()
			return resume, nil
		},
	}
	svc := newTestService(&fakeStore{}, newFakeObjects(), ai)

	_, err := svc.CreateResume(context.Background(), uuid.New(), docxUpload(t, confidentResumeBody()))

	require.NoError(t, err)
	assert.NotEmpty(t, gotInput.Text)
	assert.Nil(t, gotInput.File, "confident extraction should not ship the raw file")
}

func TestCreateResume_LowConfidenceShipsFile(t *testing.T) {
	var gotInput engine.ExtractInput
	ai := &fakeAnalyzer{
		ExtractResumeFunc: func(_ context.Context, in engine.ExtractInput) (*types.StructuredResume, error) {
			gotInput = in
			resume := &types.StructuredResume{Basics: types.Basics{Name: "Asha Verma"}}
			resume.Normalize()
			return resume, nil
		},
	}
	svc := newTestService(&fakeStore{}, newFakeObjects(), ai)

	_, err := svc.CreateResume(context.Background(), uuid.New(), docxUpload(t, "just a short note"))

	require.NoError(t, err)
	require.NotNil(t, gotInput.File, "low-confidence extraction must include the raw file")
	assert.Equal(t, extraction.MIMEDocx, gotInput.File.MIMEType)
}

func TestGetResume_NotFound(t *testing.T) {
	svc := newTestService(&fakeStore{}, newFakeObjects(), &fakeAnalyzer{})

	_, err := svc.GetResume(context.Background(), uuid.New())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "resume", notFound.Resource)
}

func TestUpdateResume_NoEffectiveUpdate(t *testing.T) {
	svc := newTestService(&fakeStore{}, newFakeObjects(), &fakeAnalyzer{})

	_, err := svc.UpdateResume(context.Background(), uuid.New(), ResumeUpdateInput{})

	var noUpdate *NoEffectiveUpdateError
	assert.ErrorAs(t, err, &noUpdate)
}

func TestUpdateResume_MetadataOnlySkipsReanalysis(t *testing.T) {
	store := &fakeStore{}
	objects := newFakeObjects()
	profileCalls := 0
	ai := &fakeAnalyzer{
		BuildCareerProfileFunc: func(_ context.Context, _ *types.StructuredResume) (*types.CareerProfile, error) {
			profileCalls++
			return (&fakeAnalyzer{}).BuildCareerProfile(context.Background(), nil)
		},
	}
	svc := newTestService(store, objects, ai)
	userID := uuid.New()

	created, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)
	callsAfterCreate := profileCalls

	updated, err := svc.UpdateResume(context.Background(), userID, ResumeUpdateInput{Extension: "pdf"})

	require.NoError(t, err)
	assert.Equal(t, created.Version+1, updated.Version)
	assert.Equal(t, "pdf", updated.Extension)
	assert.Equal(t, updated.Version, updated.Content.Metadata.ResumeVersion)
	assert.Equal(t, callsAfterCreate, profileCalls, "metadata update must not re-run analysis")
}

func TestUpdateResume_ContentMergeAndReanalysis(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, newFakeObjects(), &fakeAnalyzer{})
	userID := uuid.New()

	_, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)
	store.resume.Content.Summary = "Old summary."
	store.resume.Content.Skills.Technical = []string{"Go", "Python"}

	updated, err := svc.UpdateResume(context.Background(), userID, ResumeUpdateInput{
		Content: map[string]any{
			"summary": "New summary.",
			"skills":  map[string]any{"technical": []any{"Go"}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "New summary.", updated.Content.Summary)
	assert.Equal(t, []string{"Go"}, updated.Content.Skills.Technical, "edited lists replace wholesale")
	assert.Equal(t, "Asha Verma", updated.Content.Basics.Name, "untouched sections survive the merge")
	assert.NotNil(t, updated.AnalysedAt, "content update must re-run analysis")
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, updated.Version, updated.Content.Metadata.ResumeVersion)
}

func TestUpdateResume_VersionConflict(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, newFakeObjects(), &fakeAnalyzer{})
	userID := uuid.New()

	_, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)

	// Another writer bumps the version between our read and write.
	ai := &fakeAnalyzer{
		BuildCareerProfileFunc: func(ctx context.Context, resume *types.StructuredResume) (*types.CareerProfile, error) {
			store.resume.Version++
			return (&fakeAnalyzer{}).BuildCareerProfile(ctx, resume)
		},
	}
	svc = newTestService(store, newFakeObjects(), ai)

	_, err = svc.UpdateResume(context.Background(), userID, ResumeUpdateInput{
		Content: map[string]any{"summary": "racing update"},
	})

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestUpdateResumeFile_OverwritesAndReextracts(t *testing.T) {
	store := &fakeStore{}
	objects := newFakeObjects()
	svc := newTestService(store, objects, &fakeAnalyzer{})
	userID := uuid.New()

	created, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)
	putsAfterCreate := objects.puts

	updated, err := svc.UpdateResumeFile(context.Background(), userID, docxUpload(t, confidentResumeBody()+" Now with Kubernetes."))

	require.NoError(t, err)
	assert.Equal(t, created.StorageKey, updated.StorageKey, "file updates reuse the storage key")
	assert.Equal(t, created.Version+1, updated.Version)
	assert.Equal(t, updated.Version, updated.Content.Metadata.ResumeVersion)
	assert.Equal(t, putsAfterCreate+1, objects.puts)
}

func TestDownloadResume(t *testing.T) {
	store := &fakeStore{}
	objects := newFakeObjects()
	svc := newTestService(store, objects, &fakeAnalyzer{})
	userID := uuid.New()

	_, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)

	obj, err := svc.DownloadResume(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, extraction.MIMEDocx, obj.ContentType)
	assert.NotEmpty(t, obj.Data)
}

func TestDownloadResume_NoResume(t *testing.T) {
	svc := newTestService(&fakeStore{}, newFakeObjects(), &fakeAnalyzer{})

	_, err := svc.DownloadResume(context.Background(), uuid.New())

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDownloadResume_MissingObject(t *testing.T) {
	store := &fakeStore{}
	objects := newFakeObjects()
	svc := newTestService(store, objects, &fakeAnalyzer{})
	userID := uuid.New()

	_, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)
	delete(objects.objects, store.resume.StorageKey)

	_, err = svc.DownloadResume(context.Background(), userID)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "resume file", notFound.Resource)
}

// -----------------------------------------------------------------------------
// Job analysis and suggestions
// -----------------------------------------------------------------------------

func testJob() *types.JobPosting {
	return &types.JobPosting{
		JobMeta: types.JobMeta{
			Source:      "https://jobs.example.com/42",
			JobType:     "Job",
			Title:       "Backend Engineer",
			CompanyName: "Globex",
		},
		RawData: types.RawJobData{
			FullDescriptionText: "Backend engineer role.",
			SourceURL:           "https://jobs.example.com/42",
		},
	}
}

func TestAnalyzeJob_QualifyingMatchCountsTowardStats(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, newFakeObjects(), &fakeAnalyzer{})
	userID := uuid.New()

	_, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)

	suggestion, err := svc.AnalyzeJob(context.Background(), userID, testJob())

	require.NoError(t, err)
	assert.Equal(t, store.resume.Version, suggestion.ResumeVersion)
	assert.Equal(t, db.SuggestionStatusCompleted, suggestion.Status)
	assert.Equal(t, 1, store.recordMatchCalls)
	assert.Equal(t, 1, store.stats.TotalMatched)
}

func TestAnalyzeJob_WeakMatchDoesNotCount(t *testing.T) {
	store := &fakeStore{}
	ai := &fakeAnalyzer{
		AnalyzeJobFunc: func(_ context.Context, _ *types.JobPosting, _ *types.StructuredResume) (*types.CompatibilityReport, error) {
			return reportWithMatch(types.MatchPartial), nil
		},
	}
	svc := newTestService(store, newFakeObjects(), ai)
	userID := uuid.New()

	_, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)

	_, err = svc.AnalyzeJob(context.Background(), userID, testJob())

	require.NoError(t, err)
	assert.Zero(t, store.recordMatchCalls)
}

func TestAnalyzeJob_StatsFailureDoesNotFailAnalysis(t *testing.T) {
	store := &fakeStore{recordMatchErr: errors.New("stats table locked")}
	svc := newTestService(store, newFakeObjects(), &fakeAnalyzer{})
	userID := uuid.New()

	_, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)

	suggestion, err := svc.AnalyzeJob(context.Background(), userID, testJob())

	require.NoError(t, err, "stored suggestion outweighs a failed counter")
	assert.NotNil(t, suggestion)
}

func TestAnalyzeJob_NoResume(t *testing.T) {
	svc := newTestService(&fakeStore{}, newFakeObjects(), &fakeAnalyzer{})

	_, err := svc.AnalyzeJob(context.Background(), uuid.New(), testJob())

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSuggestion_GetAndDelete(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, newFakeObjects(), &fakeAnalyzer{})
	userID := uuid.New()

	_, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)
	created, err := svc.AnalyzeJob(context.Background(), userID, testJob())
	require.NoError(t, err)

	got, err := svc.GetSuggestion(context.Background(), userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, svc.DeleteSuggestion(context.Background(), userID, created.ID))

	var notFound *NotFoundError
	assert.ErrorAs(t, svc.DeleteSuggestion(context.Background(), userID, created.ID), &notFound)
	_, err = svc.GetSuggestion(context.Background(), userID, created.ID)
	assert.ErrorAs(t, err, &notFound)
}

// -----------------------------------------------------------------------------
// Stats and dashboard
// -----------------------------------------------------------------------------

func TestGetCareerStats_NoMatchesYieldsZeroes(t *testing.T) {
	svc := newTestService(&fakeStore{}, newFakeObjects(), &fakeAnalyzer{})
	userID := uuid.New()

	stats, err := svc.GetCareerStats(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, stats.UserID)
	assert.Zero(t, stats.TotalMatched)
}

func TestGetDashboard(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, newFakeObjects(), &fakeAnalyzer{})
	userID := uuid.New()

	_, err := svc.CreateResume(context.Background(), userID, docxUpload(t, confidentResumeBody()))
	require.NoError(t, err)
	_, err = svc.AnalyzeJob(context.Background(), userID, testJob())
	require.NoError(t, err)

	dashboard, err := svc.GetDashboard(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "me/resume", dashboard.Resume.URL)
	assert.Equal(t, store.resume.Version, dashboard.Resume.Version)
	assert.Equal(t, "Backend Developer", dashboard.Career.BestRole)
	assert.Equal(t, store.resume.ATSScore, dashboard.Career.ATSScore)
	assert.Equal(t, 1, dashboard.JobStats.Total)
	assert.Equal(t, 1, dashboard.JobStats.ThisWeek)
}

func TestGetDashboard_NoResume(t *testing.T) {
	svc := newTestService(&fakeStore{}, newFakeObjects(), &fakeAnalyzer{})

	_, err := svc.GetDashboard(context.Background(), uuid.New())

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
