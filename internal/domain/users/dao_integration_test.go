//go:build integration
// +build integration

package users_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordkit/recordkit/internal/domain/users"
	"github.com/recordkit/recordkit/internal/infrastructure/persistence"
	"github.com/recordkit/recordkit/internal/pkg/config"
)

func setupUserModel(t *testing.T) *users.UserModel {
	t.Helper()

	testCtx := persistence.SetupTestDB(t, config.SqliteDbType)
	require.NoError(t, users.Register(testCtx.Factory))

	model, err := users.New(testCtx.Factory)
	require.NoError(t, err)
	return model
}

func TestUserModelCreateAndFind(t *testing.T) {
	ctx := context.Background()
	model := setupUserModel(t)

	user := &users.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, model.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	found, err := model.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Name, found.Name)
	assert.Equal(t, user.Email, found.Email)
}

func TestUserModelFindMissing(t *testing.T) {
	ctx := context.Background()
	model := setupUserModel(t)

	_, err := model.FindByID(ctx, "6f1c64c2-29e3-4b5d-8f4e-3e7a1f1b9a10")
	require.Error(t, err)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserModelListAndRemove(t *testing.T) {
	ctx := context.Background()
	model := setupUserModel(t)

	alice := &users.User{Name: "Alice", Email: "alice@example.com"}
	bob := &users.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, model.Create(ctx, alice))
	require.NoError(t, model.Create(ctx, bob))

	list, err := model.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, model.Remove(ctx, alice.ID))

	list, err = model.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, bob.ID, list[0].ID)
}

func TestUserModelCreateInvalid(t *testing.T) {
	ctx := context.Background()
	model := setupUserModel(t)

	err := model.Create(ctx, &users.User{Name: "Alice", Email: "not-an-email"})
	require.Error(t, err)
}

func TestUserModelTransactionalRollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	model := setupUserModel(t)

	boom := errors.New("boom")
	user := &users.User{Name: "Alice", Email: "alice@example.com"}

	err := model.Transactional(ctx, func() error {
		if err := model.Create(ctx, user); err != nil {
			return err
		}
		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// The write inside the failed unit of work is not observable.
	_, err = model.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
