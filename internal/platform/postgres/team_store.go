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

// PostgresTeamStore implements the store.TeamStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTeamStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTeamStore creates a new PostgreSQL implementation of the
// TeamStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresTeamStore(db store.DBTX, logger *slog.Logger) *PostgresTeamStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTeamStore{
		db:     db,
		logger: logger.With(slog.String("component", "team_store")),
	}
}

// Ensure PostgresTeamStore implements store.TeamStore interface
var _ store.TeamStore = (*PostgresTeamStore)(nil)

// WithTx implements store.TeamStore.WithTx
func (s *PostgresTeamStore) WithTx(tx *sql.Tx) store.TeamStore {
	return &PostgresTeamStore{db: tx, logger: s.logger}
}

// List implements store.TeamStore.List
func (s *PostgresTeamStore) List(ctx context.Context) ([]*domain.Team, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM teams ORDER BY id`)
	if err != nil {
		log.Error("failed to list teams", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	teams := []*domain.Team{}
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			log.Error("failed to scan team row", slog.String("error", err.Error()))
			return nil, err
		}
		teams = append(teams, &team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}

// GetByID implements store.TeamStore.GetByID
// Returns store.ErrTeamNotFound if the team does not exist.
func (s *PostgresTeamStore) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var team domain.Team
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM teams WHERE id = $1`, id,
	).Scan(&team.ID, &team.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTeamNotFound
		}
		log.Error("failed to get team by ID",
			slog.String("error", err.Error()),
			slog.Int64("team_id", id))
		return nil, err
	}

	return &team, nil
}

// GetByName implements store.TeamStore.GetByName
// Returns store.ErrTeamNotFound if no team has the given name.
func (s *PostgresTeamStore) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var team domain.Team
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM teams WHERE name = $1`, name,
	).Scan(&team.ID, &team.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTeamNotFound
		}
		log.Error("failed to get team by name", slog.String("error", err.Error()))
		return nil, err
	}

	return &team, nil
}

// Create implements store.TeamStore.Create
// It validates the team and assigns the database-generated ID on success.
// Returns store.ErrTeamNameExists on a duplicate name.
func (s *PostgresTeamStore) Create(ctx context.Context, team *domain.Team) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := team.Validate(); err != nil {
		log.Warn("team validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO teams (name) VALUES ($1) RETURNING id`, team.Name,
	).Scan(&team.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate team name during create", slog.String("team_name", team.Name))
			return fmt.Errorf("%w: %q", store.ErrTeamNameExists, team.Name)
		}
		log.Error("failed to create team", slog.String("error", err.Error()))
		return err
	}

	log.Info("team created", slog.Int64("team_id", team.ID))
	return nil
}

// Update implements store.TeamStore.Update
// Returns store.ErrTeamNotFound if the team does not exist.
func (s *PostgresTeamStore) Update(ctx context.Context, team *domain.Team) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := team.Validate(); err != nil {
		log.Warn("team validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("team_id", team.ID))
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE teams SET name = $1 WHERE id = $2`, team.Name, team.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", store.ErrTeamNameExists, team.Name)
		}
		log.Error("failed to update team",
			slog.String("error", err.Error()),
			slog.Int64("team_id", team.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrTeamNotFound
	}

	log.Info("team updated", slog.Int64("team_id", team.ID))
	return nil
}

// Delete implements store.TeamStore.Delete
// Returns store.ErrTeamNotFound if the team does not exist and
// store.ErrReferenced if developers or projects still reference it.
func (s *PostgresTeamStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		if _, ok := isForeignKeyViolation(err); ok {
			log.Warn("team delete restricted by references", slog.Int64("team_id", id))
			return fmt.Errorf("%w: team %d", store.ErrReferenced, id)
		}
		log.Error("failed to delete team",
			slog.String("error", err.Error()),
			slog.Int64("team_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrTeamNotFound
	}

	log.Info("team deleted", slog.Int64("team_id", id))
	return nil
}
