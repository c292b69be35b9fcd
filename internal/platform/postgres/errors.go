package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes this package reacts to.
const (
	uniqueViolationCode      = "23505"
	foreignKeyViolationCode  = "23503"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

// pgError extracts the *pgconn.PgError from err, if any.
func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == uniqueViolationCode
}

// isForeignKeyViolation reports whether err is a foreign-key violation,
// returning the violated constraint name for attribution.
func isForeignKeyViolation(err error) (string, bool) {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != foreignKeyViolationCode {
		return "", false
	}
	return pgErr.ConstraintName, true
}

// isConcurrencyConflict reports whether err is a store-level concurrent
// update conflict (serialization failure or deadlock).
func isConcurrencyConflict(err error) bool {
	pgErr, ok := pgError(err)
	return ok && (pgErr.Code == serializationFailureCode || pgErr.Code == deadlockDetectedCode)
}
