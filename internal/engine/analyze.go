package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-rohit-gupta/resume-buddy/internal/llm"
	"github.com/dev-rohit-gupta/resume-buddy/internal/parsing"
	"github.com/dev-rohit-gupta/resume-buddy/internal/prompts"
	"github.com/dev-rohit-gupta/resume-buddy/internal/schemas"
	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

// AnalyzeJob grades a job posting against a structured resume and returns
// a full compatibility report.
func (e *Engine) AnalyzeJob(ctx context.Context, job *types.JobPosting, resume *types.StructuredResume) (*types.CompatibilityReport, error) {
	if job == nil {
		return nil, &NoInputError{}
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job posting: %w", err)
	}

	inputs := []llm.Input{llm.MetadataInput(job)}
	if resume != nil && !resume.IsEmpty() {
		inputs = append(inputs, llm.MetadataInput(resume))
	}

	e.logger.Debug("analyzing job", zap.String("source_url", job.RawData.SourceURL))

	raw, err := e.client.Generate(ctx, llm.Request{
		SystemInstruction: prompts.MustGet(prompts.SystemFile, prompts.KeyJobAnalysis),
		Inputs:            inputs,
		Tier:              llm.TierAdvanced,
	})
	if err != nil {
		return nil, fmt.Errorf("job analysis failed: %w", err)
	}

	doc, err := parsing.DecodeObject(raw)
	if err != nil {
		return nil, &InvalidOutputError{Operation: "job analysis", Cause: err}
	}
	if err := schemas.Validate(schemas.CompatibilityReportSchema, doc); err != nil {
		return nil, &InvalidOutputError{Operation: "job analysis", Cause: err}
	}

	var report types.CompatibilityReport
	if err := parsing.DecodeInto(doc, &report); err != nil {
		return nil, &InvalidOutputError{Operation: "job analysis", Cause: err}
	}
	if err := report.Validate(); err != nil {
		return nil, &InvalidOutputError{Operation: "job analysis", Cause: err}
	}

	return &report, nil
}
