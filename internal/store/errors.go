package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it so callers can match
	// either the generic or the specific error.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. a team with an existing name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when a dependent row names a foreign
	// key that does not exist in its owning table.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrConflict is returned when the store reports that a row was modified
	// concurrently between load and save.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrReferenced is returned when a delete is rejected because other rows
	// still reference the entity (ON DELETE RESTRICT).
	ErrReferenced = errors.New("entity is referenced by other rows")

	// Entity-specific "not found" errors

	ErrTeamNotFound        = fmt.Errorf("%w: team", ErrNotFound)
	ErrRoleNotFound        = fmt.Errorf("%w: role", ErrNotFound)
	ErrProjectTypeNotFound = fmt.Errorf("%w: project type", ErrNotFound)
	ErrDeveloperNotFound   = fmt.Errorf("%w: developer", ErrNotFound)
	ErrProjectNotFound     = fmt.Errorf("%w: project", ErrNotFound)

	// Entity-specific "duplicate" errors

	ErrTeamNameExists        = fmt.Errorf("%w: team name", ErrDuplicate)
	ErrRoleNameExists        = fmt.Errorf("%w: role name", ErrDuplicate)
	ErrProjectTypeNameExists = fmt.Errorf("%w: project type name", ErrDuplicate)

	// Field-specific broken-reference errors

	ErrInvalidTeamRef        = fmt.Errorf("%w: TeamId", ErrInvalidReference)
	ErrInvalidRoleRef        = fmt.Errorf("%w: RoleId", ErrInvalidReference)
	ErrInvalidProjectTypeRef = fmt.Errorf("%w: ProjectTypeId", ErrInvalidReference)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with
// additional context.
type StoreError struct {
	Entity    string // The entity type (e.g. "team", "project")
	Operation string // The operation that failed (e.g. "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v",
			e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
