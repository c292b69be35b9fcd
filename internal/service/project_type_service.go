package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/store"
)

// ProjectTypeService provides project-type CRUD operations. Unlike the other
// resources, the update operation is a full replace-by-id with an explicit
// id-mismatch check and a concurrency-conflict recovery path.
type ProjectTypeService interface {
	// ListProjectTypes returns all project types.
	ListProjectTypes(ctx context.Context) ([]*domain.ProjectType, error)

	// GetProjectType returns the project type with the given ID.
	// Returns store.ErrProjectTypeNotFound if it does not exist.
	GetProjectType(ctx context.Context, id int64) (*domain.ProjectType, error)

	// CreateProjectType creates a project type with the given name.
	// Returns store.ErrProjectTypeNameExists for a duplicate and
	// domain.ErrEmptyProjectTypeName for a blank name.
	CreateProjectType(ctx context.Context, name string) (*domain.ProjectType, error)

	// ReplaceProjectType overwrites the full row identified by id.
	// Returns ErrIDMismatch when id differs from pt.ID. On a store-reported
	// concurrency conflict it re-checks existence: a vanished row yields
	// store.ErrProjectTypeNotFound, a surviving row propagates the conflict.
	ReplaceProjectType(ctx context.Context, id int64, pt *domain.ProjectType) error

	// DeleteProjectType removes the project type with the given ID.
	DeleteProjectType(ctx context.Context, id int64) error
}

// projectTypeServiceImpl implements the ProjectTypeService interface.
type projectTypeServiceImpl struct {
	types  store.ProjectTypeStore
	logger *slog.Logger
}

// NewProjectTypeService creates a new ProjectTypeService.
func NewProjectTypeService(types store.ProjectTypeStore, logger *slog.Logger) (ProjectTypeService, error) {
	if types == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "types store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &projectTypeServiceImpl{
		types:  types,
		logger: logger.With("component", "project_type_service"),
	}, nil
}

func (s *projectTypeServiceImpl) ListProjectTypes(ctx context.Context) ([]*domain.ProjectType, error) {
	return s.types.List(ctx)
}

func (s *projectTypeServiceImpl) GetProjectType(ctx context.Context, id int64) (*domain.ProjectType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *projectTypeServiceImpl) CreateProjectType(ctx context.Context, name string) (*domain.ProjectType, error) {
	pt, err := domain.NewProjectType(name)
	if err != nil {
		return nil, err
	}

	existing, err := s.types.GetByName(ctx, name)
	if err != nil && !errors.Is(err, store.ErrProjectTypeNotFound) {
		return nil, &ServiceError{Operation: "create_project_type", Message: "uniqueness check failed", Err: err}
	}
	if existing != nil {
		s.logger.Warn("rejected duplicate project type name", "name", name)
		return nil, store.ErrProjectTypeNameExists
	}

	if err := s.types.Create(ctx, pt); err != nil {
		return nil, err
	}

	s.logger.Info("project type created", "project_type_id", pt.ID)
	return pt, nil
}

func (s *projectTypeServiceImpl) ReplaceProjectType(ctx context.Context, id int64, pt *domain.ProjectType) error {
	if pt.ID != id {
		s.logger.Warn("project type id mismatch",
			"path_id", id,
			"payload_id", pt.ID)
		return ErrIDMismatch
	}

	err := s.types.Replace(ctx, pt)
	if err == nil {
		s.logger.Info("project type replaced", "project_type_id", id)
		return nil
	}

	// A conflict means the row changed between our caller's read and this
	// write. If it was deleted in the meantime, report NotFound; otherwise
	// the conflict stands and propagates. There is no retry.
	if errors.Is(err, store.ErrConflict) {
		if _, getErr := s.types.GetByID(ctx, id); errors.Is(getErr, store.ErrProjectTypeNotFound) {
			return store.ErrProjectTypeNotFound
		}
		return err
	}

	return err
}

func (s *projectTypeServiceImpl) DeleteProjectType(ctx context.Context, id int64) error {
	if err := s.types.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("project type deleted", "project_type_id", id)
	return nil
}
