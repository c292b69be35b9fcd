package service

import (
	"errors"
	"fmt"
)

// ErrIDMismatch is returned by the ProjectType full-replace operation when
// the path ID does not match the payload ID.
var ErrIDMismatch = errors.New("path id does not match payload id")

// ServiceError wraps unexpected errors from a service operation with context.
// Expected outcomes (not found, duplicates, broken references) are returned
// as the store/domain sentinels directly so callers can match on them.
type ServiceError struct {
	Operation string // The operation that failed (e.g. "create_team")
	Message   string // Human-readable description
	Err       error  // Underlying error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
