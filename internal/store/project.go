package store

import (
	"context"
	"database/sql"

	"github.com/rosterhq/roster-api/internal/domain"
)

// ProjectStore defines the interface for project persistence.
type ProjectStore interface {
	// List returns all projects ordered by ID.
	List(ctx context.Context) ([]*domain.Project, error)

	// GetByID retrieves a project by ID.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Project, error)

	// Create inserts a new project and assigns its ID.
	// Returns ErrInvalidTeamRef / ErrInvalidProjectTypeRef if a foreign key
	// does not resolve (constraint backstop for the service-level checks).
	Create(ctx context.Context, project *domain.Project) error

	// Update saves changes to an existing project, foreign keys included.
	// Returns ErrProjectNotFound if the project does not exist and a
	// broken-reference error if an overwritten foreign key does not resolve.
	Update(ctx context.Context, project *domain.Project) error

	// Delete removes a project by ID.
	// Returns ErrProjectNotFound if the project does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a ProjectStore bound to the provided transaction.
	WithTx(tx *sql.Tx) ProjectStore
}
