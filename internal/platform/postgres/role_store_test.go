package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleStore(t *testing.T) (*PostgresRoleStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRoleStore(db, nil), mock
}

func TestNewPostgresRoleStore_NilDBPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewPostgresRoleStore(nil, nil)
	})
}

func TestRoleStore_List(t *testing.T) {
	s, mock := newRoleStore(t)

	mock.ExpectQuery("SELECT id, name FROM roles ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "SWE").
			AddRow(2, "QA"))

	roles, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, int64(1), roles[0].ID)
	assert.Equal(t, "SWE", roles[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleStore_List_EmptyTableReturnsEmptySlice(t *testing.T) {
	s, mock := newRoleStore(t)

	mock.ExpectQuery("SELECT id, name FROM roles ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	roles, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, roles)
	assert.Empty(t, roles)
}

func TestRoleStore_GetByID(t *testing.T) {
	s, mock := newRoleStore(t)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name FROM roles WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "SWE"))

		role, err := s.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "SWE", role.Name)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name FROM roles WHERE id").
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := s.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, store.ErrRoleNotFound)
	})
}

func TestRoleStore_GetByName(t *testing.T) {
	s, mock := newRoleStore(t)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name FROM roles WHERE name").
			WithArgs("SWE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "SWE"))

		role, err := s.GetByName(context.Background(), "SWE")
		require.NoError(t, err)
		assert.Equal(t, int64(1), role.ID)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name FROM roles WHERE name").
			WithArgs("Nope").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := s.GetByName(context.Background(), "Nope")
		assert.ErrorIs(t, err, store.ErrRoleNotFound)
	})
}

func TestRoleStore_Create(t *testing.T) {
	s, mock := newRoleStore(t)

	t.Run("assigns_id", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO roles").
			WithArgs("SWE").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		role := &domain.Role{Name: "SWE"}
		require.NoError(t, s.Create(context.Background(), role))
		assert.Equal(t, int64(7), role.ID)
	})

	t.Run("duplicate_name", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO roles").
			WithArgs("SWE").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "roles_name_key"})

		err := s.Create(context.Background(), &domain.Role{Name: "SWE"})
		assert.ErrorIs(t, err, store.ErrRoleNameExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("empty_name_rejected_before_sql", func(t *testing.T) {
		err := s.Create(context.Background(), &domain.Role{})
		assert.ErrorIs(t, err, domain.ErrEmptyRoleName)
	})
}

func TestRoleStore_Update(t *testing.T) {
	s, mock := newRoleStore(t)

	t.Run("ok", func(t *testing.T) {
		mock.ExpectExec("UPDATE roles SET name").
			WithArgs("QA", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.Update(context.Background(), &domain.Role{ID: 1, Name: "QA"})
		assert.NoError(t, err)
	})

	t.Run("missing_row", func(t *testing.T) {
		mock.ExpectExec("UPDATE roles SET name").
			WithArgs("QA", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Update(context.Background(), &domain.Role{ID: 99, Name: "QA"})
		assert.ErrorIs(t, err, store.ErrRoleNotFound)
	})
}

func TestRoleStore_Delete(t *testing.T) {
	s, mock := newRoleStore(t)

	t.Run("ok", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM roles WHERE id").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Delete(context.Background(), 1))
	})

	t.Run("missing_row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM roles WHERE id").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Delete(context.Background(), 99), store.ErrRoleNotFound)
	})

	t.Run("restricted_by_references", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM roles WHERE id").
			WithArgs(int64(1)).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "developers_role_id_fkey"})

		assert.ErrorIs(t, s.Delete(context.Background(), 1), store.ErrReferenced)
	})

	t.Run("other_errors_pass_through", func(t *testing.T) {
		boom := errors.New("connection reset")
		mock.ExpectExec("DELETE FROM roles WHERE id").
			WithArgs(int64(1)).
			WillReturnError(boom)

		assert.ErrorIs(t, s.Delete(context.Background(), 1), boom)
	})
}
