package career

import "fmt"

// NotFoundError indicates the requested resource does not exist for the
// user.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NoEffectiveUpdateError indicates an update request that would change
// nothing.
type NoEffectiveUpdateError struct{}

func (e *NoEffectiveUpdateError) Error() string {
	return "no fields to update"
}

// ConflictError indicates the caller's view of the resume went stale
// during its update. The caller should re-read and retry.
type ConflictError struct{}

func (e *ConflictError) Error() string {
	return "resume was modified concurrently"
}
