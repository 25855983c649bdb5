package impl

import (
	"context"
	"testing"

	"recyclemart/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_Seed(t *testing.T) {
	fx := newStoreFixture(t)
	ctx := context.Background()
	srv := NewSeedService(SeedServiceParams{
		UserRepo:      fx.userRepo,
		VoucherRepo:   fx.voucherRepo,
		ProductRepo:   fx.productRepo,
		InventoryRepo: fx.inventoryRepo,
		Hasher:        fx.hasher,
		Config:        fx.cfg,
		Logger:        newDiscardLogger(),
	})

	fx.hasher.EXPECT().Hash("Sup3rSecret").Return("admin-hash", nil).Once()

	report, err := srv.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Users)
	assert.Equal(t, len(seedVouchers), report.Vouchers)
	assert.Equal(t, len(seedProducts), report.Products)
	assert.Equal(t, len(seedDevices), report.Devices)

	admin, err := fx.userRepo.FindByEmail(ctx, "root@recyclemart.io")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, "admin-hash", admin.PasswordHash)

	// A second run finds every collection populated.
	report, err = srv.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, *report)

	devices, err := fx.inventoryRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, len(seedDevices))
}
