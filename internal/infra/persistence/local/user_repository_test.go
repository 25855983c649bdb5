package local

import (
	"context"
	"testing"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t), newDiscardLogger())

	require.NoError(t, repo.Create(ctx, newTestUser("b@x.io", entity.RoleCustomer, 0)))
	require.NoError(t, repo.Create(ctx, newTestUser("a@x.io", entity.RoleCompany, 0)))

	err := repo.Create(ctx, newTestUser("a@x.io", entity.RoleCustomer, 0))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	user, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompany, user.Role)
	assert.Equal(t, "hash", user.PasswordHash)

	_, err = repo.FindByEmail(ctx, "A@x.io")
	assert.ErrorIs(t, err, repository.ErrUserNotFound, "lookup is case-sensitive")

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@x.io", users[0].Email)
	assert.Equal(t, "b@x.io", users[1].Email)
}

func TestUserRepository_UpdateProfileMergesPresentFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t), newDiscardLogger())

	original := newTestUser("c@x.io", entity.RoleCustomer, 5)
	original.Profile.LastName = "Keep"
	require.NoError(t, repo.Create(ctx, original))

	phone := "555-0100"
	updated, err := repo.UpdateProfile(ctx, "c@x.io", entity.ProfileUpdate{PhoneNumber: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", updated.Profile.PhoneNumber)
	assert.Equal(t, "Keep", updated.Profile.LastName)
	assert.Equal(t, 5, updated.Profile.Points)

	stored, err := repo.FindByEmail(ctx, "c@x.io")
	require.NoError(t, err)
	assert.Equal(t, updated.Profile, stored.Profile)

	_, err = repo.UpdateProfile(ctx, "missing@x.io", entity.ProfileUpdate{PhoneNumber: &phone})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_AwardPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    int
		delta    int
		expected int
	}{
		{name: "add", start: 100, delta: 25, expected: 125},
		{name: "subtract", start: 100, delta: -40, expected: 60},
		{name: "clamped at zero", start: 100, delta: -10000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			repo := NewUserRepository(newTestStore(t), newDiscardLogger())
			require.NoError(t, repo.Create(ctx, newTestUser("p@x.io", entity.RoleCustomer, tt.start)))

			total, err := repo.AwardPoints(ctx, "p@x.io", tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, total)

			user, err := repo.FindByEmail(ctx, "p@x.io")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, user.Profile.Points)
		})
	}
}

func TestUserRepository_AwardPointsUnknownUser(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(newTestStore(t), newDiscardLogger())

	_, err := repo.AwardPoints(context.Background(), "ghost@x.io", 10)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
