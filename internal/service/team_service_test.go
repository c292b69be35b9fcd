package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/service"
	"github.com/rosterhq/roster-api/internal/store"
)

func TestCreateTeam(t *testing.T) {
	t.Parallel()

	t.Run("creates team when name is free", func(t *testing.T) {
		t.Parallel()

		teams := &fakeTeamStore{
			getByNameFn: func(_ context.Context, _ string) (*domain.Team, error) {
				return nil, store.ErrTeamNotFound
			},
			createFn: func(_ context.Context, team *domain.Team) error {
				team.ID = 1
				return nil
			},
		}
		svc, err := service.NewTeamService(teams, slog.Default())
		require.NoError(t, err)

		team, err := svc.CreateTeam(context.Background(), "Backend")
		require.NoError(t, err)
		assert.Equal(t, int64(1), team.ID)
		assert.Equal(t, "Backend", team.Name)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		t.Parallel()

		teams := &fakeTeamStore{
			getByNameFn: func(_ context.Context, _ string) (*domain.Team, error) {
				return &domain.Team{ID: 7, Name: "Backend"}, nil
			},
		}
		svc, err := service.NewTeamService(teams, slog.Default())
		require.NoError(t, err)

		_, err = svc.CreateTeam(context.Background(), "Backend")
		assert.ErrorIs(t, err, store.ErrTeamNameExists)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		svc, err := service.NewTeamService(&fakeTeamStore{}, slog.Default())
		require.NoError(t, err)

		_, err = svc.CreateTeam(context.Background(), "  ")
		assert.ErrorIs(t, err, domain.ErrEmptyTeamName)
	})

	t.Run("wraps unexpected lookup errors", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("connection reset")
		teams := &fakeTeamStore{
			getByNameFn: func(_ context.Context, _ string) (*domain.Team, error) {
				return nil, dbErr
			},
		}
		svc, err := service.NewTeamService(teams, slog.Default())
		require.NoError(t, err)

		_, err = svc.CreateTeam(context.Background(), "Backend")
		require.Error(t, err)

		var svcErr *service.ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "create_team", svcErr.Operation)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestUpdateTeam(t *testing.T) {
	t.Parallel()

	t.Run("merges supplied name", func(t *testing.T) {
		t.Parallel()

		var saved *domain.Team
		teams := &fakeTeamStore{
			getByIDFn: func(_ context.Context, id int64) (*domain.Team, error) {
				return &domain.Team{ID: id, Name: "Backend"}, nil
			},
			updateFn: func(_ context.Context, team *domain.Team) error {
				saved = team
				return nil
			},
		}
		svc, err := service.NewTeamService(teams, slog.Default())
		require.NoError(t, err)

		name := "Platform"
		team, err := svc.UpdateTeam(context.Background(), 3, service.TeamUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Platform", team.Name)
		require.NotNil(t, saved)
		assert.Equal(t, "Platform", saved.Name)
	})

	t.Run("keeps stored name when patch omits it", func(t *testing.T) {
		t.Parallel()

		teams := &fakeTeamStore{
			getByIDFn: func(_ context.Context, id int64) (*domain.Team, error) {
				return &domain.Team{ID: id, Name: "Backend"}, nil
			},
			updateFn: func(_ context.Context, _ *domain.Team) error {
				return nil
			},
		}
		svc, err := service.NewTeamService(teams, slog.Default())
		require.NoError(t, err)

		team, err := svc.UpdateTeam(context.Background(), 3, service.TeamUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "Backend", team.Name)
	})

	t.Run("rejects blank replacement name", func(t *testing.T) {
		t.Parallel()

		teams := &fakeTeamStore{
			getByIDFn: func(_ context.Context, id int64) (*domain.Team, error) {
				return &domain.Team{ID: id, Name: "Backend"}, nil
			},
		}
		svc, err := service.NewTeamService(teams, slog.Default())
		require.NoError(t, err)

		blank := ""
		_, err = svc.UpdateTeam(context.Background(), 3, service.TeamUpdate{Name: &blank})
		assert.ErrorIs(t, err, domain.ErrEmptyTeamName)
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()

		teams := &fakeTeamStore{
			getByIDFn: func(_ context.Context, _ int64) (*domain.Team, error) {
				return nil, store.ErrTeamNotFound
			},
		}
		svc, err := service.NewTeamService(teams, slog.Default())
		require.NoError(t, err)

		_, err = svc.UpdateTeam(context.Background(), 99, service.TeamUpdate{})
		assert.ErrorIs(t, err, store.ErrTeamNotFound)
	})
}

func TestDeleteTeam(t *testing.T) {
	t.Parallel()

	t.Run("propagates referenced error", func(t *testing.T) {
		t.Parallel()

		teams := &fakeTeamStore{
			deleteFn: func(_ context.Context, _ int64) error {
				return store.ErrReferenced
			},
		}
		svc, err := service.NewTeamService(teams, slog.Default())
		require.NoError(t, err)

		err = svc.DeleteTeam(context.Background(), 1)
		assert.ErrorIs(t, err, store.ErrReferenced)
	})

	t.Run("deletes unreferenced team", func(t *testing.T) {
		t.Parallel()

		var deleted int64
		teams := &fakeTeamStore{
			deleteFn: func(_ context.Context, id int64) error {
				deleted = id
				return nil
			},
		}
		svc, err := service.NewTeamService(teams, slog.Default())
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTeam(context.Background(), 4))
		assert.Equal(t, int64(4), deleted)
	})
}
