package store

import (
	"context"
	"database/sql"

	"github.com/rosterhq/roster-api/internal/domain"
)

// ProjectTypeStore defines the interface for project-type persistence.
type ProjectTypeStore interface {
	// List returns all project types ordered by ID.
	List(ctx context.Context) ([]*domain.ProjectType, error)

	// GetByID retrieves a project type by its ID.
	// Returns ErrProjectTypeNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.ProjectType, error)

	// GetByName retrieves a project type by its exact name.
	// Returns ErrProjectTypeNotFound if no project type has that name.
	GetByName(ctx context.Context, name string) (*domain.ProjectType, error)

	// Create inserts a new project type and assigns its ID.
	// Returns ErrProjectTypeNameExists if the name is already taken.
	Create(ctx context.Context, pt *domain.ProjectType) error

	// Replace overwrites the full row identified by pt.ID.
	// Returns ErrProjectTypeNotFound if it does not exist and ErrConflict
	// if the store reports a concurrent-update conflict during the write.
	Replace(ctx context.Context, pt *domain.ProjectType) error

	// Delete removes a project type by ID.
	// Returns ErrProjectTypeNotFound if it does not exist and ErrReferenced
	// if projects still point at it.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a ProjectTypeStore bound to the provided transaction.
	WithTx(tx *sql.Tx) ProjectTypeStore
}
