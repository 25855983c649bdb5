package impl

import (
	"context"
	"testing"
	"time"

	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealth bool

func (h stubHealth) Degraded() bool { return bool(h) }

func (fx *storeFixture) dashboardService(degraded bool) *dashboardService {
	srv := NewDashboardService(DashboardServiceParams{
		Gate:          fx.gate,
		UserRepo:      fx.userRepo,
		RequestRepo:   fx.requestRepo,
		InventoryRepo: fx.inventoryRepo,
		OrderRepo:     fx.orderRepo,
		Health:        stubHealth(degraded),
		Config:        fx.cfg,
		Logger:        newDiscardLogger(),
	}).(*dashboardService)
	srv.now = fixedClock

	return srv
}

func TestDashboardService_Stats(t *testing.T) {
	fx := newStoreFixture(t)
	ctx := context.Background()

	recent := testNow.Add(-2 * 24 * time.Hour)
	stale := testNow.Add(-30 * 24 * time.Hour)
	users := []*entity.User{
		{Email: "a@example.com", Role: entity.RoleCustomer, Profile: entity.Profile{Points: 40}, LastLogin: &recent},
		{Email: "b@example.com", Role: entity.RoleCustomer, Profile: entity.Profile{Points: 60}, LastLogin: &stale},
		{Email: "c@example.com", Role: entity.RoleCompany},
	}
	for _, user := range users {
		require.NoError(t, fx.userRepo.Create(ctx, user))
	}

	quotes := fx.quoteService()
	first := submitTestRequest(t, fx, "a@example.com")
	second := submitTestRequest(t, fx, "b@example.com")
	submitTestRequest(t, fx, "b@example.com")
	fx.loginAs(t, "admin@example.com", entity.RoleAdmin)
	_, err := quotes.SetQuote(ctx, first, decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = quotes.SetQuote(ctx, second, decimal.RequireFromString("20.50"))
	require.NoError(t, err)
	_, err = quotes.SetStatus(ctx, second, entity.RequestRejected)
	require.NoError(t, err)

	fx.addDevice(t, entity.DeviceTablet, "Apple", "300", entity.ConditionGood, testNow)

	stats, err := fx.dashboardService(true).Stats(ctx)
	require.NoError(t, err)

	// Three seeded accounts plus the admin created by loginAs.
	assert.Equal(t, 4, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 2, stats.UsersByRole[entity.RoleCustomer])
	assert.Equal(t, 1, stats.UsersByRole[entity.RoleAdmin])
	assert.Equal(t, 100, stats.TotalPoints)
	assert.Equal(t, 1, stats.DevicesByType[entity.DeviceTablet])
	assert.Equal(t, 1, stats.RequestsByStatus[entity.RequestQuoted])
	assert.Equal(t, 1, stats.RequestsByStatus[entity.RequestRejected])
	assert.Equal(t, 1, stats.RequestsByStatus[entity.RequestPending])
	assert.True(t, stats.TotalQuotedValue.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.StorageDegraded)
}

func TestDashboardService_Stats_AdminOnly(t *testing.T) {
	fx := newStoreFixture(t)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)

	_, err := fx.dashboardService(false).Stats(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
