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

// PostgresDeveloperStore implements the store.DeveloperStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDeveloperStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDeveloperStore creates a new PostgreSQL implementation of the
// DeveloperStore interface. If logger is nil, a default logger will be used.
func NewPostgresDeveloperStore(db store.DBTX, logger *slog.Logger) *PostgresDeveloperStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDeveloperStore{
		db:     db,
		logger: logger.With(slog.String("component", "developer_store")),
	}
}

// Ensure PostgresDeveloperStore implements store.DeveloperStore interface
var _ store.DeveloperStore = (*PostgresDeveloperStore)(nil)

// WithTx implements store.DeveloperStore.WithTx
func (s *PostgresDeveloperStore) WithTx(tx *sql.Tx) store.DeveloperStore {
	return &PostgresDeveloperStore{db: tx, logger: s.logger}
}

// developerRefError attributes a foreign-key violation to the team or role
// reference by the violated constraint name.
func developerRefError(constraint string) error {
	switch {
	case strings.Contains(constraint, "team"):
		return store.ErrInvalidTeamRef
	case strings.Contains(constraint, "role"):
		return store.ErrInvalidRoleRef
	default:
		return store.ErrInvalidReference
	}
}

// List implements store.DeveloperStore.List
func (s *PostgresDeveloperStore) List(ctx context.Context) ([]*domain.Developer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, team_id, role_id FROM developers ORDER BY id`)
	if err != nil {
		log.Error("failed to list developers", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	developers := []*domain.Developer{}
	for rows.Next() {
		var dev domain.Developer
		if err := rows.Scan(&dev.ID, &dev.FirstName, &dev.LastName, &dev.TeamID, &dev.RoleID); err != nil {
			log.Error("failed to scan developer row", slog.String("error", err.Error()))
			return nil, err
		}
		developers = append(developers, &dev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return developers, nil
}

// GetByID implements store.DeveloperStore.GetByID
func (s *PostgresDeveloperStore) GetByID(ctx context.Context, id int64) (*domain.Developer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var dev domain.Developer
	err := s.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, team_id, role_id FROM developers WHERE id = $1`, id,
	).Scan(&dev.ID, &dev.FirstName, &dev.LastName, &dev.TeamID, &dev.RoleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDeveloperNotFound
		}
		log.Error("failed to get developer by ID",
			slog.String("error", err.Error()),
			slog.Int64("developer_id", id))
		return nil, err
	}

	return &dev, nil
}

// Create implements store.DeveloperStore.Create
// A foreign-key violation is attributed to the offending reference; the
// service layer normally catches broken references before the insert, this
// is the constraint backstop for races.
func (s *PostgresDeveloperStore) Create(ctx context.Context, dev *domain.Developer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO developers (first_name, last_name, team_id, role_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		dev.FirstName, dev.LastName, dev.TeamID, dev.RoleID,
	).Scan(&dev.ID)
	if err != nil {
		if constraint, ok := isForeignKeyViolation(err); ok {
			log.Warn("foreign key violation during developer create",
				slog.String("constraint", constraint),
				slog.Int64("team_id", dev.TeamID),
				slog.Int64("role_id", dev.RoleID))
			return developerRefError(constraint)
		}
		log.Error("failed to create developer", slog.String("error", err.Error()))
		return err
	}

	log.Info("developer created",
		slog.Int64("developer_id", dev.ID),
		slog.Int64("team_id", dev.TeamID),
		slog.Int64("role_id", dev.RoleID))
	return nil
}

// Update implements store.DeveloperStore.Update
// Foreign keys are written as given; a violation is attributed to the
// offending reference.
func (s *PostgresDeveloperStore) Update(ctx context.Context, dev *domain.Developer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE developers SET first_name = $1, last_name = $2, team_id = $3, role_id = $4
		 WHERE id = $5`,
		dev.FirstName, dev.LastName, dev.TeamID, dev.RoleID, dev.ID,
	)
	if err != nil {
		if constraint, ok := isForeignKeyViolation(err); ok {
			log.Warn("foreign key violation during developer update",
				slog.String("constraint", constraint),
				slog.Int64("developer_id", dev.ID))
			return developerRefError(constraint)
		}
		log.Error("failed to update developer",
			slog.String("error", err.Error()),
			slog.Int64("developer_id", dev.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrDeveloperNotFound
	}

	log.Info("developer updated", slog.Int64("developer_id", dev.ID))
	return nil
}

// Delete implements store.DeveloperStore.Delete
func (s *PostgresDeveloperStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM developers WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete developer",
			slog.String("error", err.Error()),
			slog.Int64("developer_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrDeveloperNotFound
	}

	log.Info("developer deleted", slog.Int64("developer_id", id))
	return nil
}
