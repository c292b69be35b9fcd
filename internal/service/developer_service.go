package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/store"
)

// DeveloperUpdate is the partial-update payload for a developer. Name fields
// are merged (nil keeps the stored value); the foreign keys are always
// written wholesale, zero values included. The asymmetry is inherited from
// the source system and preserved on purpose.
type DeveloperUpdate struct {
	FirstName *string
	LastName  *string
	TeamID    int64
	RoleID    int64
}

// DeveloperService provides developer CRUD operations.
type DeveloperService interface {
	// ListDevelopers returns all developers.
	ListDevelopers(ctx context.Context) ([]*domain.Developer, error)

	// GetDeveloper returns the developer with the given ID.
	// Returns store.ErrDeveloperNotFound if it does not exist.
	GetDeveloper(ctx context.Context, id int64) (*domain.Developer, error)

	// CreateDeveloper validates that the referenced team and role exist,
	// then persists the developer and assigns its ID.
	// Returns store.ErrInvalidTeamRef / store.ErrInvalidRoleRef when a
	// reference does not resolve.
	CreateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error)

	// UpdateDeveloper applies the merge rules and returns the updated row.
	UpdateDeveloper(ctx context.Context, id int64, patch DeveloperUpdate) (*domain.Developer, error)

	// DeleteDeveloper removes the developer with the given ID.
	DeleteDeveloper(ctx context.Context, id int64) error
}

// developerServiceImpl implements the DeveloperService interface.
type developerServiceImpl struct {
	developers store.DeveloperStore
	teams      store.TeamStore
	roles      store.RoleStore
	logger     *slog.Logger
}

// NewDeveloperService creates a new DeveloperService.
func NewDeveloperService(
	developers store.DeveloperStore,
	teams store.TeamStore,
	roles store.RoleStore,
	logger *slog.Logger,
) (DeveloperService, error) {
	if developers == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "developers store cannot be nil"}
	}
	if teams == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "teams store cannot be nil"}
	}
	if roles == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "roles store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &developerServiceImpl{
		developers: developers,
		teams:      teams,
		roles:      roles,
		logger:     logger.With("component", "developer_service"),
	}, nil
}

func (s *developerServiceImpl) ListDevelopers(ctx context.Context) ([]*domain.Developer, error) {
	return s.developers.List(ctx)
}

func (s *developerServiceImpl) GetDeveloper(ctx context.Context, id int64) (*domain.Developer, error) {
	return s.developers.GetByID(ctx, id)
}

// CreateDeveloper checks both references before insert so the caller gets a
// field-attributed error rather than a bare constraint failure.
func (s *developerServiceImpl) CreateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error) {
	if _, err := s.teams.GetByID(ctx, dev.TeamID); err != nil {
		if errors.Is(err, store.ErrTeamNotFound) {
			s.logger.Warn("developer create rejected: unknown team", "team_id", dev.TeamID)
			return nil, store.ErrInvalidTeamRef
		}
		return nil, &ServiceError{Operation: "create_developer", Message: "team lookup failed", Err: err}
	}

	if _, err := s.roles.GetByID(ctx, dev.RoleID); err != nil {
		if errors.Is(err, store.ErrRoleNotFound) {
			s.logger.Warn("developer create rejected: unknown role", "role_id", dev.RoleID)
			return nil, store.ErrInvalidRoleRef
		}
		return nil, &ServiceError{Operation: "create_developer", Message: "role lookup failed", Err: err}
	}

	if err := s.developers.Create(ctx, dev); err != nil {
		return nil, err
	}

	s.logger.Info("developer created", "developer_id", dev.ID)
	return dev, nil
}

// UpdateDeveloper merges name fields but overwrites both foreign keys with
// the patch values regardless. A dangling foreign key surfaces as the
// store's broken-reference error.
func (s *developerServiceImpl) UpdateDeveloper(ctx context.Context, id int64, patch DeveloperUpdate) (*domain.Developer, error) {
	dev, err := s.developers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		dev.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		dev.LastName = *patch.LastName
	}
	dev.TeamID = patch.TeamID
	dev.RoleID = patch.RoleID

	if err := s.developers.Update(ctx, dev); err != nil {
		return nil, err
	}

	s.logger.Info("developer updated", "developer_id", id)
	return dev, nil
}

func (s *developerServiceImpl) DeleteDeveloper(ctx context.Context, id int64) error {
	if err := s.developers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("developer deleted", "developer_id", id)
	return nil
}
