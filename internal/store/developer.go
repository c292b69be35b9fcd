package store

import (
	"context"
	"database/sql"

	"github.com/rosterhq/roster-api/internal/domain"
)

// DeveloperStore defines the interface for developer persistence.
type DeveloperStore interface {
	// List returns all developers ordered by ID.
	List(ctx context.Context) ([]*domain.Developer, error)

	// GetByID retrieves a developer by ID.
	// Returns ErrDeveloperNotFound if the developer does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Developer, error)

	// Create inserts a new developer and assigns its ID.
	// Returns ErrInvalidTeamRef / ErrInvalidRoleRef if a foreign key does
	// not resolve (constraint backstop for the service-level checks).
	Create(ctx context.Context, dev *domain.Developer) error

	// Update saves changes to an existing developer, foreign keys included.
	// Returns ErrDeveloperNotFound if the developer does not exist and a
	// broken-reference error if an overwritten foreign key does not resolve.
	Update(ctx context.Context, dev *domain.Developer) error

	// Delete removes a developer by ID.
	// Returns ErrDeveloperNotFound if the developer does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a DeveloperStore bound to the provided transaction.
	WithTx(tx *sql.Tx) DeveloperStore
}
