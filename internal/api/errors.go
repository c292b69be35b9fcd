package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/service"
	"github.com/rosterhq/roster-api/internal/service/auth"
	"github.com/rosterhq/roster-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Delete rejected because dependents still reference the row
	case errors.Is(err, store.ErrReferenced):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidReference),
		errors.Is(err, service.ErrIDMismatch),
		errors.Is(err, domain.ErrEmptyTeamName),
		errors.Is(err, domain.ErrEmptyRoleName),
		errors.Is(err, domain.ErrEmptyProjectTypeName):
		return http.StatusBadRequest

	// Default: internal server error (includes store.ErrConflict, which means
	// a concurrent writer won and we have nothing better to tell the client)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	// Not found errors
	case errors.Is(err, store.ErrTeamNotFound):
		return "Team not found"

	case errors.Is(err, store.ErrRoleNotFound):
		return "Role not found"

	case errors.Is(err, store.ErrProjectTypeNotFound):
		return "Project type not found"

	case errors.Is(err, store.ErrDeveloperNotFound):
		return "Developer not found"

	case errors.Is(err, store.ErrProjectNotFound):
		return "Project not found"

	// Duplicate names
	case errors.Is(err, store.ErrTeamNameExists):
		return "Team name already exists"

	case errors.Is(err, store.ErrRoleNameExists):
		return "Role name already exists"

	case errors.Is(err, store.ErrProjectTypeNameExists):
		return "Project type name already exists"

	// Broken references, attributed to the offending field
	case errors.Is(err, store.ErrInvalidTeamRef):
		return "Invalid TeamId: referenced team does not exist"

	case errors.Is(err, store.ErrInvalidRoleRef):
		return "Invalid RoleId: referenced role does not exist"

	case errors.Is(err, store.ErrInvalidProjectTypeRef):
		return "Invalid ProjectTypeId: referenced project type does not exist"

	// Delete blocked by dependents
	case errors.Is(err, store.ErrReferenced):
		return "Entity is referenced by other records and cannot be deleted"

	// Bad request errors
	case errors.Is(err, service.ErrIDMismatch):
		return "Path id does not match payload id"

	case errors.Is(err, domain.ErrEmptyTeamName),
		errors.Is(err, domain.ErrEmptyRoleName),
		errors.Is(err, domain.ErrEmptyProjectTypeName):
		return "Name must not be empty"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'CreateTeamRequest.Name' Error:Field validation
		// for 'Name' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt":
		return "must be positive"
	default:
		return "validation failed"
	}
}
