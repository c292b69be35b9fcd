package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/platform/logger"
	"github.com/rosterhq/roster-api/internal/store"
)

// PostgresProjectTypeStore implements the store.ProjectTypeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProjectTypeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProjectTypeStore creates a new PostgreSQL implementation of the
// ProjectTypeStore interface. If logger is nil, a default logger will be used.
func NewPostgresProjectTypeStore(db store.DBTX, logger *slog.Logger) *PostgresProjectTypeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProjectTypeStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_type_store")),
	}
}

// Ensure PostgresProjectTypeStore implements store.ProjectTypeStore interface
var _ store.ProjectTypeStore = (*PostgresProjectTypeStore)(nil)

// WithTx implements store.ProjectTypeStore.WithTx
func (s *PostgresProjectTypeStore) WithTx(tx *sql.Tx) store.ProjectTypeStore {
	return &PostgresProjectTypeStore{db: tx, logger: s.logger}
}

// List implements store.ProjectTypeStore.List
func (s *PostgresProjectTypeStore) List(ctx context.Context) ([]*domain.ProjectType, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM project_types ORDER BY id`)
	if err != nil {
		log.Error("failed to list project types", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	types := []*domain.ProjectType{}
	for rows.Next() {
		var pt domain.ProjectType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			log.Error("failed to scan project type row", slog.String("error", err.Error()))
			return nil, err
		}
		types = append(types, &pt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

// GetByID implements store.ProjectTypeStore.GetByID
func (s *PostgresProjectTypeStore) GetByID(ctx context.Context, id int64) (*domain.ProjectType, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var pt domain.ProjectType
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM project_types WHERE id = $1`, id,
	).Scan(&pt.ID, &pt.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProjectTypeNotFound
		}
		log.Error("failed to get project type by ID",
			slog.String("error", err.Error()),
			slog.Int64("project_type_id", id))
		return nil, err
	}

	return &pt, nil
}

// GetByName implements store.ProjectTypeStore.GetByName
func (s *PostgresProjectTypeStore) GetByName(ctx context.Context, name string) (*domain.ProjectType, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var pt domain.ProjectType
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM project_types WHERE name = $1`, name,
	).Scan(&pt.ID, &pt.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProjectTypeNotFound
		}
		log.Error("failed to get project type by name", slog.String("error", err.Error()))
		return nil, err
	}

	return &pt, nil
}

// Create implements store.ProjectTypeStore.Create
func (s *PostgresProjectTypeStore) Create(ctx context.Context, pt *domain.ProjectType) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := pt.Validate(); err != nil {
		log.Warn("project type validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO project_types (name) VALUES ($1) RETURNING id`, pt.Name,
	).Scan(&pt.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate project type name during create", slog.String("name", pt.Name))
			return fmt.Errorf("%w: %q", store.ErrProjectTypeNameExists, pt.Name)
		}
		log.Error("failed to create project type", slog.String("error", err.Error()))
		return err
	}

	log.Info("project type created", slog.Int64("project_type_id", pt.ID))
	return nil
}

// Replace implements store.ProjectTypeStore.Replace
// It overwrites the full row identified by pt.ID. A store-reported
// concurrent-update conflict surfaces as store.ErrConflict so the service
// layer can re-check existence, per the full-replace contract.
func (s *PostgresProjectTypeStore) Replace(ctx context.Context, pt *domain.ProjectType) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := pt.Validate(); err != nil {
		log.Warn("project type validation failed during replace",
			slog.String("error", err.Error()),
			slog.Int64("project_type_id", pt.ID))
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE project_types SET name = $1 WHERE id = $2`, pt.Name, pt.ID,
	)
	if err != nil {
		if isConcurrencyConflict(err) {
			log.Warn("concurrency conflict during project type replace",
				slog.Int64("project_type_id", pt.ID))
			return fmt.Errorf("%w: project type %d", store.ErrConflict, pt.ID)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", store.ErrProjectTypeNameExists, pt.Name)
		}
		log.Error("failed to replace project type",
			slog.String("error", err.Error()),
			slog.Int64("project_type_id", pt.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrProjectTypeNotFound
	}

	log.Info("project type replaced", slog.Int64("project_type_id", pt.ID))
	return nil
}

// Delete implements store.ProjectTypeStore.Delete
func (s *PostgresProjectTypeStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM project_types WHERE id = $1`, id)
	if err != nil {
		if _, ok := isForeignKeyViolation(err); ok {
			log.Warn("project type delete restricted by references",
				slog.Int64("project_type_id", id))
			return fmt.Errorf("%w: project type %d", store.ErrReferenced, id)
		}
		log.Error("failed to delete project type",
			slog.String("error", err.Error()),
			slog.Int64("project_type_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrProjectTypeNotFound
	}

	log.Info("project type deleted", slog.Int64("project_type_id", id))
	return nil
}
