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

// BuildCareerProfile derives a role-fit profile from a structured resume.
// The resume is the model's only evidence; the output is schema-checked
// before it is trusted.
func (e *Engine) BuildCareerProfile(ctx context.Context, resume *types.StructuredResume) (*types.CareerProfile, error) {
	if resume == nil || resume.IsEmpty() {
		return nil, &NoInputError{}
	}
	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume: %w", err)
	}

	e.logger.Debug("building career profile",
		zap.Int("resume_version", resume.Metadata.ResumeVersion))

	raw, err := e.client.Generate(ctx, llm.Request{
		SystemInstruction: prompts.MustGet(prompts.SystemFile, prompts.KeyCareerProfile),
		Inputs:            []llm.Input{llm.MetadataInput(resume)},
		Tier:              llm.TierAdvanced,
	})
	if err != nil {
		return nil, fmt.Errorf("career profile synthesis failed: %w", err)
	}

	doc, err := parsing.DecodeObject(raw)
	if err != nil {
		return nil, &InvalidOutputError{Operation: "career profile synthesis", Cause: err}
	}
	if err := schemas.Validate(schemas.CareerProfileSchema, doc); err != nil {
		return nil, &InvalidOutputError{Operation: "career profile synthesis", Cause: err}
	}

	var profile types.CareerProfile
	if err := parsing.DecodeInto(doc, &profile); err != nil {
		return nil, &InvalidOutputError{Operation: "career profile synthesis", Cause: err}
	}

	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, &InvalidOutputError{Operation: "career profile synthesis", Cause: err}
	}

	return &profile, nil
}
