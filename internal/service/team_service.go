package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/store"
)

// TeamUpdate is the partial-update payload for a team. A nil Name keeps the
// stored value.
type TeamUpdate struct {
	Name *string
}

// TeamService provides team CRUD operations.
type TeamService interface {
	// ListTeams returns all teams.
	ListTeams(ctx context.Context) ([]*domain.Team, error)

	// GetTeam returns the team with the given ID.
	// Returns store.ErrTeamNotFound if it does not exist.
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)

	// CreateTeam creates a team with the given name.
	// Returns store.ErrTeamNameExists if the name is already taken and
	// domain.ErrEmptyTeamName for a blank name.
	CreateTeam(ctx context.Context, name string) (*domain.Team, error)

	// UpdateTeam applies a partial update and returns the updated team.
	// Returns store.ErrTeamNotFound if the team does not exist.
	UpdateTeam(ctx context.Context, id int64, patch TeamUpdate) (*domain.Team, error)

	// DeleteTeam removes the team with the given ID.
	// Returns store.ErrTeamNotFound or store.ErrReferenced.
	DeleteTeam(ctx context.Context, id int64) error
}

// teamServiceImpl implements the TeamService interface.
type teamServiceImpl struct {
	teams  store.TeamStore
	logger *slog.Logger
}

// NewTeamService creates a new TeamService.
func NewTeamService(teams store.TeamStore, logger *slog.Logger) (TeamService, error) {
	if teams == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "teams store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &teamServiceImpl{
		teams:  teams,
		logger: logger.With("component", "team_service"),
	}, nil
}

func (s *teamServiceImpl) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teams.List(ctx)
}

func (s *teamServiceImpl) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return s.teams.GetByID(ctx, id)
}

// CreateTeam enforces name uniqueness before insert; the database unique
// constraint backstops the check under concurrency.
func (s *teamServiceImpl) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	team, err := domain.NewTeam(name)
	if err != nil {
		return nil, err
	}

	existing, err := s.teams.GetByName(ctx, name)
	if err != nil && !errors.Is(err, store.ErrTeamNotFound) {
		return nil, &ServiceError{Operation: "create_team", Message: "uniqueness check failed", Err: err}
	}
	if existing != nil {
		s.logger.Warn("rejected duplicate team name", "team_name", name)
		return nil, store.ErrTeamNameExists
	}

	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Info("team created", "team_id", team.ID)
	return team, nil
}

// UpdateTeam merges the patch into the stored row. The name is required to
// be non-empty when supplied; an absent name keeps the stored value.
func (s *teamServiceImpl) UpdateTeam(ctx context.Context, id int64, patch TeamUpdate) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		team.Name = *patch.Name
	}
	if err := team.Validate(); err != nil {
		return nil, err
	}

	if err := s.teams.Update(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Info("team updated", "team_id", id)
	return team, nil
}

func (s *teamServiceImpl) DeleteTeam(ctx context.Context, id int64) error {
	if err := s.teams.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("team deleted", "team_id", id)
	return nil
}
