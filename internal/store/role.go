package store

import (
	"context"
	"database/sql"

	"github.com/rosterhq/roster-api/internal/domain"
)

// RoleStore defines the interface for role persistence.
type RoleStore interface {
	// List returns all roles ordered by ID.
	List(ctx context.Context) ([]*domain.Role, error)

	// GetByID retrieves a role by its ID.
	// Returns ErrRoleNotFound if the role does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Role, error)

	// GetByName retrieves a role by its exact name.
	// Returns ErrRoleNotFound if no role has that name.
	GetByName(ctx context.Context, name string) (*domain.Role, error)

	// Create inserts a new role and assigns its ID.
	// Returns ErrRoleNameExists if the name is already taken.
	Create(ctx context.Context, role *domain.Role) error

	// Update saves changes to an existing role.
	// Returns ErrRoleNotFound if the role does not exist.
	Update(ctx context.Context, role *domain.Role) error

	// Delete removes a role by ID.
	// Returns ErrRoleNotFound if the role does not exist and ErrReferenced
	// if developers still point at it.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a RoleStore bound to the provided transaction.
	WithTx(tx *sql.Tx) RoleStore
}
