// Package engine runs the AI operations of the system: resume extraction,
// career profile synthesis, and job analysis. Each operation assembles a
// request for the model gateway, recovers JSON from the raw response, and
// validates the result before returning it.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-rohit-gupta/resume-buddy/internal/llm"
)

// Engine binds a model client to the system's AI operations.
type Engine struct {
	client llm.Client
	logger *zap.Logger
}

// New creates an Engine. A nil logger disables logging.
func New(client llm.Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{client: client, logger: logger}
}

// NoInputError indicates an operation was called with nothing to analyze.
type NoInputError struct{}

func (e *NoInputError) Error() string {
	return "one parameter is required"
}

// InvalidOutputError indicates the model returned JSON that does not
// satisfy the operation's output contract.
type InvalidOutputError struct {
	Operation string
	Cause     error
}

func (e *InvalidOutputError) Error() string {
	return fmt.Sprintf("%s produced invalid output: %v", e.Operation, e.Cause)
}

func (e *InvalidOutputError) Unwrap() error {
	return e.Cause
}
