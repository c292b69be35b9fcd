package store_test

import (
	"fmt"
	"testing"

	"github.com/rosterhq/roster-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestSentinelWrapping(t *testing.T) {
	notFound := []error{
		store.ErrTeamNotFound,
		store.ErrRoleNotFound,
		store.ErrProjectTypeNotFound,
		store.ErrDeveloperNotFound,
		store.ErrProjectNotFound,
	}
	for _, err := range notFound {
		assert.True(t, store.IsNotFoundError(err), "%v should be a not-found error", err)
		assert.False(t, store.IsDuplicateError(err))
	}

	duplicates := []error{
		store.ErrTeamNameExists,
		store.ErrRoleNameExists,
		store.ErrProjectTypeNameExists,
	}
	for _, err := range duplicates {
		assert.True(t, store.IsDuplicateError(err), "%v should be a duplicate error", err)
		assert.False(t, store.IsNotFoundError(err))
	}

	refs := []error{
		store.ErrInvalidTeamRef,
		store.ErrInvalidRoleRef,
		store.ErrInvalidProjectTypeRef,
	}
	for _, err := range refs {
		assert.ErrorIs(t, err, store.ErrInvalidReference)
	}
}

func TestSentinelWrappingSurvivesFurtherWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading team 7: %w", store.ErrTeamNotFound)
	assert.True(t, store.IsNotFoundError(wrapped))
	assert.ErrorIs(t, wrapped, store.ErrTeamNotFound)
}

func TestStoreError(t *testing.T) {
	inner := store.ErrConflict
	err := store.NewStoreError("project type", "replace", "save failed", inner)

	assert.Contains(t, err.Error(), "replace operation on project type failed")
	assert.ErrorIs(t, err, store.ErrConflict)

	bare := store.NewStoreError("team", "create", "boom", nil)
	assert.Equal(t, "create operation on team failed: boom", bare.Error())
}
