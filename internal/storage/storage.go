// Package storage stores and retrieves the original uploaded resume files.
// The structured content lives in PostgreSQL; the raw bytes live in an
// object store keyed by a per-user storage key.
package storage

import (
	"context"
	"fmt"
)

// Object is a stored file with its content type.
type Object struct {
	Data        []byte
	ContentType string
}

// ObjectStore abstracts the blob backend so services can be tested
// without AWS credentials.
type ObjectStore interface {
	// Put stores an object under key, overwriting any existing object.
	Put(ctx context.Context, key string, obj Object) error
	// Get retrieves the object stored under key.
	Get(ctx context.Context, key string) (*Object, error)
	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}

// NotFoundError indicates no object exists under the requested key.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object not found: %s", e.Key)
}
