package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/store"
)

// RoleUpdate is the partial-update payload for a role. A nil Name keeps the
// stored value.
type RoleUpdate struct {
	Name *string
}

// RoleService provides role CRUD operations.
type RoleService interface {
	// ListRoles returns all roles.
	ListRoles(ctx context.Context) ([]*domain.Role, error)

	// GetRole returns the role with the given ID.
	// Returns store.ErrRoleNotFound if it does not exist.
	GetRole(ctx context.Context, id int64) (*domain.Role, error)

	// CreateRole creates a role with the given name.
	// Returns store.ErrRoleNameExists for a duplicate and
	// domain.ErrEmptyRoleName for a blank name.
	CreateRole(ctx context.Context, name string) (*domain.Role, error)

	// UpdateRole applies a partial update and returns the updated role.
	UpdateRole(ctx context.Context, id int64, patch RoleUpdate) (*domain.Role, error)

	// DeleteRole removes the role with the given ID.
	DeleteRole(ctx context.Context, id int64) error
}

// roleServiceImpl implements the RoleService interface.
type roleServiceImpl struct {
	roles  store.RoleStore
	logger *slog.Logger
}

// NewRoleService creates a new RoleService.
func NewRoleService(roles store.RoleStore, logger *slog.Logger) (RoleService, error) {
	if roles == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "roles store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &roleServiceImpl{
		roles:  roles,
		logger: logger.With("component", "role_service"),
	}, nil
}

func (s *roleServiceImpl) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *roleServiceImpl) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roles.GetByID(ctx, id)
}

func (s *roleServiceImpl) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	role, err := domain.NewRole(name)
	if err != nil {
		return nil, err
	}

	existing, err := s.roles.GetByName(ctx, name)
	if err != nil && !errors.Is(err, store.ErrRoleNotFound) {
		return nil, &ServiceError{Operation: "create_role", Message: "uniqueness check failed", Err: err}
	}
	if existing != nil {
		s.logger.Warn("rejected duplicate role name", "role_name", name)
		return nil, store.ErrRoleNameExists
	}

	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("role created", "role_id", role.ID)
	return role, nil
}

func (s *roleServiceImpl) UpdateRole(ctx context.Context, id int64, patch RoleUpdate) (*domain.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		role.Name = *patch.Name
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("role updated", "role_id", id)
	return role, nil
}

func (s *roleServiceImpl) DeleteRole(ctx context.Context, id int64) error {
	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("role deleted", "role_id", id)
	return nil
}
