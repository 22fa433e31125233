package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-rohit-gupta/resume-buddy/internal/llm"
	"github.com/dev-rohit-gupta/resume-buddy/internal/parsing"
	"github.com/dev-rohit-gupta/resume-buddy/internal/prompts"
	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

// FileAttachment is a raw document passed to extraction when plain text
// is unavailable or low-confidence.
type FileAttachment struct {
	Data     []byte
	MIMEType string
}

// ExtractInput carries the optional inputs to resume extraction. At least
// one of Text, File, or Metadata must be set.
type ExtractInput struct {
	Text     string
	File     *FileAttachment
	Metadata map[string]any
}

func (in ExtractInput) empty() bool {
	return in.Text == "" && in.File == nil && len(in.Metadata) == 0
}

// ExtractResume converts raw resume content into a validated StructuredResume.
func (e *Engine) ExtractResume(ctx context.Context, in ExtractInput) (*types.StructuredResume, error) {
	if in.empty() {
		return nil, &NoInputError{}
	}

	inputs := make([]llm.Input, 0, 3)
	if in.Text != "" {
		inputs = append(inputs, llm.TextInput(in.Text))
	}
	if in.File != nil {
		inputs = append(inputs, llm.FileInput(in.File.MIMEType, in.File.Data))
	}
	if len(in.Metadata) > 0 {
		inputs = append(inputs, llm.MetadataInput(in.Metadata))
	}

	e.logger.Debug("extracting resume",
		zap.Int("text_len", len(in.Text)),
		zap.Bool("has_file", in.File != nil))

	raw, err := e.client.Generate(ctx, llm.Request{
		SystemInstruction: prompts.MustGet(prompts.SystemFile, prompts.KeyResumeExtraction),
		Inputs:            inputs,
		Tier:              llm.TierStandard,
	})
	if err != nil {
		return nil, fmt.Errorf("resume extraction failed: %w", err)
	}

	var resume types.StructuredResume
	if err := parsing.DecodeInto(raw, &resume); err != nil {
		return nil, &InvalidOutputError{Operation: "resume extraction", Cause: err}
	}

	resume.Normalize()
	resume.Metadata.ExtractedAt = time.Now().UTC().Format(time.RFC3339)
	if err := resume.Validate(); err != nil {
		return nil, &InvalidOutputError{Operation: "resume extraction", Cause: err}
	}

	return &resume, nil
}
