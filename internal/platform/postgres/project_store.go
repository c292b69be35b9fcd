package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/platform/logger"
	"github.com/rosterhq/roster-api/internal/store"
)

// PostgresProjectStore implements the store.ProjectStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProjectStore creates a new PostgreSQL implementation of the
// ProjectStore interface. If logger is nil, a default logger will be used.
func NewPostgresProjectStore(db store.DBTX, logger *slog.Logger) *PostgresProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store")),
	}
}

// Ensure PostgresProjectStore implements store.ProjectStore interface
var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// WithTx implements store.ProjectStore.WithTx
func (s *PostgresProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return &PostgresProjectStore{db: tx, logger: s.logger}
}

// projectRefError attributes a foreign-key violation to the team or
// project-type reference by the violated constraint name.
func projectRefError(constraint string) error {
	switch {
	case strings.Contains(constraint, "project_type"):
		return store.ErrInvalidProjectTypeRef
	case strings.Contains(constraint, "team"):
		return store.ErrInvalidTeamRef
	default:
		return store.ErrInvalidReference
	}
}

// List implements store.ProjectStore.List
func (s *PostgresProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, team_id, project_type_id FROM projects ORDER BY id`)
	if err != nil {
		log.Error("failed to list projects", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	projects := []*domain.Project{}
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(&project.ID, &project.Name, &project.TeamID, &project.ProjectTypeID); err != nil {
			log.Error("failed to scan project row", slog.String("error", err.Error()))
			return nil, err
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// GetByID implements store.ProjectStore.GetByID
func (s *PostgresProjectStore) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var project domain.Project
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, team_id, project_type_id FROM projects WHERE id = $1`, id,
	).Scan(&project.ID, &project.Name, &project.TeamID, &project.ProjectTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project by ID",
			slog.String("error", err.Error()),
			slog.Int64("project_id", id))
		return nil, err
	}

	return &project, nil
}

// Create implements store.ProjectStore.Create
func (s *PostgresProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO projects (name, team_id, project_type_id)
		 VALUES ($1, $2, $3) RETURNING id`,
		project.Name, project.TeamID, project.ProjectTypeID,
	).Scan(&project.ID)
	if err != nil {
		if constraint, ok := isForeignKeyViolation(err); ok {
			log.Warn("foreign key violation during project create",
				slog.String("constraint", constraint),
				slog.Int64("team_id", project.TeamID),
				slog.Int64("project_type_id", project.ProjectTypeID))
			return projectRefError(constraint)
		}
		log.Error("failed to create project", slog.String("error", err.Error()))
		return err
	}

	log.Info("project created",
		slog.Int64("project_id", project.ID),
		slog.Int64("team_id", project.TeamID))
	return nil
}

// Update implements store.ProjectStore.Update
func (s *PostgresProjectStore) Update(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE projects SET name = $1, team_id = $2, project_type_id = $3 WHERE id = $4`,
		project.Name, project.TeamID, project.ProjectTypeID, project.ID,
	)
	if err != nil {
		if constraint, ok := isForeignKeyViolation(err); ok {
			log.Warn("foreign key violation during project update",
				slog.String("constraint", constraint),
				slog.Int64("project_id", project.ID))
			return projectRefError(constraint)
		}
		log.Error("failed to update project",
			slog.String("error", err.Error()),
			slog.Int64("project_id", project.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrProjectNotFound
	}

	log.Info("project updated", slog.Int64("project_id", project.ID))
	return nil
}

// Delete implements store.ProjectStore.Delete
func (s *PostgresProjectStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete project",
			slog.String("error", err.Error()),
			slog.Int64("project_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrProjectNotFound
	}

	log.Info("project deleted", slog.Int64("project_id", id))
	return nil
}
