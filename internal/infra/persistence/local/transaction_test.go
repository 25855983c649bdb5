package local

import (
	"context"
	"testing"

	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/errors"
	"recyclemart/internal/infra/persistence/kv"
	mockKV "recyclemart/internal/mocks/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsAllWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)
	logger := newDiscardLogger()
	tm := NewTransactionManager(store, logger)

	device := newTestDevice(entity.DeviceLaptop, "Dell", "500")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, newTestUser("t@x.io", entity.RoleCustomer, 0)); err != nil {
			return err
		}
		if _, err := f.UserRepo().AwardPoints(ctx, "t@x.io", 50); err != nil {
			return err
		}

		return f.InventoryRepo().Create(ctx, device)
	})
	require.NoError(t, err)

	user, err := NewUserRepository(store, logger).FindByEmail(ctx, "t@x.io")
	require.NoError(t, err)
	assert.Equal(t, 50, user.Profile.Points)

	_, err = NewInventoryRepository(store, logger).FindByID(ctx, device.ID)
	require.NoError(t, err)
}

func TestTransactionManager_FailureWritesNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)
	logger := newDiscardLogger()
	tm := NewTransactionManager(store, logger)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, newTestUser("t@x.io", entity.RoleCustomer, 0)); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	keys, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestTransactionManager_CommitFailureIsStorageError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mockKV.NewMockStore(t)
	tm := NewTransactionManager(store, newDiscardLogger())

	store.EXPECT().Get(mock.Anything, KeyOrders).Return("", false, nil)
	store.EXPECT().Apply(mock.Anything, mock.Anything).Return(kv.ErrQuotaExceeded)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.OrderRepo().Create(ctx, &entity.Order{Status: entity.OrderProcessing})
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStorage)
	assert.ErrorIs(t, err, kv.ErrQuotaExceeded)
}
