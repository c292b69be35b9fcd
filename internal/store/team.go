package store

import (
	"context"
	"database/sql"

	"github.com/rosterhq/roster-api/internal/domain"
)

// TeamStore defines the interface for team persistence.
type TeamStore interface {
	// List returns all teams ordered by ID.
	List(ctx context.Context) ([]*domain.Team, error)

	// GetByID retrieves a team by its ID.
	// Returns ErrTeamNotFound if the team does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Team, error)

	// GetByName retrieves a team by its exact name.
	// Returns ErrTeamNotFound if no team has that name.
	GetByName(ctx context.Context, name string) (*domain.Team, error)

	// Create inserts a new team and assigns its ID.
	// Returns ErrTeamNameExists if the name is already taken.
	Create(ctx context.Context, team *domain.Team) error

	// Update saves changes to an existing team.
	// Returns ErrTeamNotFound if the team does not exist.
	Update(ctx context.Context, team *domain.Team) error

	// Delete removes a team by ID.
	// Returns ErrTeamNotFound if the team does not exist and ErrReferenced
	// if developers or projects still point at it.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TeamStore bound to the provided transaction.
	WithTx(tx *sql.Tx) TeamStore
}
