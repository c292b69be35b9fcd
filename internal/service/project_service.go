package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/store"
)

// ProjectUpdate is the partial-update payload for a project. Name is merged
// (nil keeps the stored value); both foreign keys are always overwritten.
type ProjectUpdate struct {
	Name          *string
	TeamID        int64
	ProjectTypeID int64
}

// ProjectService provides project CRUD operations.
type ProjectService interface {
	// ListProjects returns all projects with foreign keys only; the team and
	// project-type aggregates are not hydrated on reads.
	ListProjects(ctx context.Context) ([]*domain.Project, error)

	// GetProject returns the project with the given ID.
	// Returns store.ErrProjectNotFound if it does not exist.
	GetProject(ctx context.Context, id int64) (*domain.Project, error)

	// CreateProject resolves both references and inserts the project in one
	// transaction, returning the project with its Team and ProjectType
	// aggregates attached. Returns store.ErrInvalidTeamRef /
	// store.ErrInvalidProjectTypeRef when a reference does not resolve.
	CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)

	// UpdateProject applies the merge rules and returns the updated row.
	UpdateProject(ctx context.Context, id int64, patch ProjectUpdate) (*domain.Project, error)

	// DeleteProject removes the project with the given ID.
	DeleteProject(ctx context.Context, id int64) error
}

// projectServiceImpl implements the ProjectService interface.
type projectServiceImpl struct {
	db       *sql.DB
	projects store.ProjectStore
	teams    store.TeamStore
	types    store.ProjectTypeStore
	logger   *slog.Logger
}

// NewProjectService creates a new ProjectService. The db handle is used to
// run create operations transactionally across the three stores.
func NewProjectService(
	db *sql.DB,
	projects store.ProjectStore,
	teams store.TeamStore,
	types store.ProjectTypeStore,
	logger *slog.Logger,
) (ProjectService, error) {
	if db == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if projects == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "projects store cannot be nil"}
	}
	if teams == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "teams store cannot be nil"}
	}
	if types == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "types store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &projectServiceImpl{
		db:       db,
		projects: projects,
		teams:    teams,
		types:    types,
		logger:   logger.With("component", "project_service"),
	}, nil
}

func (s *projectServiceImpl) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectServiceImpl) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// CreateProject resolves the team and project type and inserts the project
// under one transaction so the attached aggregates are consistent with the
// row that was written.
func (s *projectServiceImpl) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		teams := s.teams.WithTx(tx)
		types := s.types.WithTx(tx)
		projects := s.projects.WithTx(tx)

		team, err := teams.GetByID(ctx, project.TeamID)
		if err != nil {
			if errors.Is(err, store.ErrTeamNotFound) {
				return store.ErrInvalidTeamRef
			}
			return err
		}

		projectType, err := types.GetByID(ctx, project.ProjectTypeID)
		if err != nil {
			if errors.Is(err, store.ErrProjectTypeNotFound) {
				return store.ErrInvalidProjectTypeRef
			}
			return err
		}

		if err := projects.Create(ctx, project); err != nil {
			return err
		}

		project.Attach(team, projectType)
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			s.logger.Warn("project create rejected: broken reference",
				"team_id", project.TeamID,
				"project_type_id", project.ProjectTypeID,
				"error", err)
		}
		return nil, err
	}

	s.logger.Info("project created", "project_id", project.ID)
	return project, nil
}

// UpdateProject merges the name but overwrites both foreign keys with the
// patch values regardless. A dangling foreign key surfaces as the store's
// broken-reference error.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, id int64, patch ProjectUpdate) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	project.TeamID = patch.TeamID
	project.ProjectTypeID = patch.ProjectTypeID

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated", "project_id", id)
	return project, nil
}

func (s *projectServiceImpl) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("project deleted", "project_id", id)
	return nil
}
