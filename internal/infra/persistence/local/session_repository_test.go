package local

import (
	"context"
	"testing"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_SaveLoadClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)
	repo := NewSessionRepository(store)

	flags, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &repository.SessionFlags{}, flags)

	require.NoError(t, repo.Save(ctx, &repository.SessionFlags{LoggedIn: true, Email: "a@x.io", Role: entity.RoleAdmin}))

	raw, ok, err := store.Get(ctx, KeyIsLoggedIn)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", raw)

	flags, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, flags.LoggedIn)
	assert.Equal(t, "a@x.io", flags.Email)
	assert.Equal(t, entity.RoleAdmin, flags.Role)

	require.NoError(t, repo.Clear(ctx))
	keys, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
