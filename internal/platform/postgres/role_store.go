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

// PostgresRoleStore implements the store.RoleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresRoleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRoleStore creates a new PostgreSQL implementation of the
// RoleStore interface. If logger is nil, a default logger will be used.
func NewPostgresRoleStore(db store.DBTX, logger *slog.Logger) *PostgresRoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRoleStore{
		db:     db,
		logger: logger.With(slog.String("component", "role_store")),
	}
}

// Ensure PostgresRoleStore implements store.RoleStore interface
var _ store.RoleStore = (*PostgresRoleStore)(nil)

// WithTx implements store.RoleStore.WithTx
func (s *PostgresRoleStore) WithTx(tx *sql.Tx) store.RoleStore {
	return &PostgresRoleStore{db: tx, logger: s.logger}
}

// List implements store.RoleStore.List
func (s *PostgresRoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		log.Error("failed to list roles", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	roles := []*domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			log.Error("failed to scan role row", slog.String("error", err.Error()))
			return nil, err
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

// GetByID implements store.RoleStore.GetByID
func (s *PostgresRoleStore) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var role domain.Role
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM roles WHERE id = $1`, id,
	).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRoleNotFound
		}
		log.Error("failed to get role by ID",
			slog.String("error", err.Error()),
			slog.Int64("role_id", id))
		return nil, err
	}

	return &role, nil
}

// GetByName implements store.RoleStore.GetByName
func (s *PostgresRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var role domain.Role
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM roles WHERE name = $1`, name,
	).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRoleNotFound
		}
		log.Error("failed to get role by name", slog.String("error", err.Error()))
		return nil, err
	}

	return &role, nil
}

// Create implements store.RoleStore.Create
func (s *PostgresRoleStore) Create(ctx context.Context, role *domain.Role) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := role.Validate(); err != nil {
		log.Warn("role validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO roles (name) VALUES ($1) RETURNING id`, role.Name,
	).Scan(&role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate role name during create", slog.String("role_name", role.Name))
			return fmt.Errorf("%w: %q", store.ErrRoleNameExists, role.Name)
		}
		log.Error("failed to create role", slog.String("error", err.Error()))
		return err
	}

	log.Info("role created", slog.Int64("role_id", role.ID))
	return nil
}

// Update implements store.RoleStore.Update
func (s *PostgresRoleStore) Update(ctx context.Context, role *domain.Role) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := role.Validate(); err != nil {
		log.Warn("role validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("role_id", role.ID))
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE roles SET name = $1 WHERE id = $2`, role.Name, role.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", store.ErrRoleNameExists, role.Name)
		}
		log.Error("failed to update role",
			slog.String("error", err.Error()),
			slog.Int64("role_id", role.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrRoleNotFound
	}

	log.Info("role updated", slog.Int64("role_id", role.ID))
	return nil
}

// Delete implements store.RoleStore.Delete
func (s *PostgresRoleStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if _, ok := isForeignKeyViolation(err); ok {
			log.Warn("role delete restricted by references", slog.Int64("role_id", id))
			return fmt.Errorf("%w: role %d", store.ErrReferenced, id)
		}
		log.Error("failed to delete role",
			slog.String("error", err.Error()),
			slog.Int64("role_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrRoleNotFound
	}

	log.Info("role deleted", slog.Int64("role_id", id))
	return nil
}
