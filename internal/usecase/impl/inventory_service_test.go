package impl

import (
	"context"
	"testing"
	"time"

	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedInventory adds five devices received one day apart, oldest first.
func seedInventory(t *testing.T, fx *storeFixture) []*entity.InventoryDevice {
	t.Helper()

	day := func(n int) time.Time { return testNow.Add(time.Duration(n-10) * 24 * time.Hour) }

	return []*entity.InventoryDevice{
		fx.addDevice(t, entity.DeviceLaptop, "Dell", "550", entity.ConditionGood, day(1)),
		fx.addDevice(t, entity.DeviceLaptop, "Apple", "900", entity.ConditionExcellent, day(2)),
		fx.addDevice(t, entity.DeviceSmartphone, "Samsung", "120", entity.ConditionFair, day(3)),
		fx.addDevice(t, entity.DeviceLaptop, "Lenovo", "600", entity.ConditionPoor, day(4)),
		fx.addDevice(t, entity.DeviceTablet, "Apple", "300", entity.ConditionGood, day(5)),
	}
}

func collectIDs(devices []*entity.InventoryDevice) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(devices))
	for _, d := range devices {
		ids = append(ids, d.ID)
	}

	return ids
}

func TestInventoryService_List_LaptopsUnderPrice(t *testing.T) {
	fx := newStoreFixture(t)
	devices := seedInventory(t, fx)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)

	page, err := fx.inventoryService().List(context.Background(), usecase.InventoryQuery{
		Filter: usecase.InventoryFilter{
			Types:    []entity.DeviceType{entity.DeviceLaptop},
			MaxPrice: decimalPtr("600"),
		},
		Sort: usecase.SortPriceAsc,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []uuid.UUID{devices[0].ID, devices[3].ID}, collectIDs(page.Items))
	for _, item := range page.Items {
		assert.Equal(t, entity.DeviceLaptop, item.Type)
		assert.True(t, item.Value.LessThanOrEqual(decimal.NewFromInt(600)))
	}
}

func TestInventoryService_List_TotalMatchesCountByType(t *testing.T) {
	fx := newStoreFixture(t)
	seedInventory(t, fx)
	fx.loginAs(t, "admin@example.com", entity.RoleAdmin)
	srv := fx.inventoryService()
	ctx := context.Background()

	page, err := srv.List(ctx, usecase.InventoryQuery{})
	require.NoError(t, err)

	counts, err := srv.CountByType(ctx)
	require.NoError(t, err)

	sum := 0
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, page.TotalCount, sum)
	assert.Equal(t, 5, sum)
	assert.Equal(t, 3, counts[entity.DeviceLaptop])
}

func TestInventoryService_List_Sorts(t *testing.T) {
	fx := newStoreFixture(t)
	d := seedInventory(t, fx)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.cfg.Inventory.PageSize = 10

	tests := []struct {
		sort string
		want []uuid.UUID
	}{
		{sort: "", want: []uuid.UUID{d[4].ID, d[3].ID, d[2].ID, d[1].ID, d[0].ID}},
		{sort: usecase.SortOldest, want: []uuid.UUID{d[0].ID, d[1].ID, d[2].ID, d[3].ID, d[4].ID}},
		{sort: usecase.SortPriceDesc, want: []uuid.UUID{d[1].ID, d[3].ID, d[0].ID, d[4].ID, d[2].ID}},
		{sort: usecase.SortConditionRank, want: []uuid.UUID{d[1].ID, d[0].ID, d[4].ID, d[2].ID, d[3].ID}},
	}

	for _, tt := range tests {
		t.Run("sort "+tt.sort, func(t *testing.T) {
			page, err := fx.inventoryService().List(context.Background(), usecase.InventoryQuery{Sort: tt.sort})

			require.NoError(t, err)
			assert.Equal(t, tt.want, collectIDs(page.Items))
		})
	}

	_, err := fx.inventoryService().List(context.Background(), usecase.InventoryQuery{Sort: "random"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInventoryService_List_FilterDimensions(t *testing.T) {
	fx := newStoreFixture(t)
	d := seedInventory(t, fx)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.cfg.Inventory.PageSize = 10

	tests := []struct {
		name   string
		filter usecase.InventoryFilter
		want   []uuid.UUID
	}{
		{
			name:   "types are ORed",
			filter: usecase.InventoryFilter{Types: []entity.DeviceType{entity.DeviceSmartphone, entity.DeviceTablet}},
			want:   []uuid.UUID{d[4].ID, d[2].ID},
		},
		{
			name:   "brand is case-insensitive",
			filter: usecase.InventoryFilter{Brands: []string{"apple"}},
			want:   []uuid.UUID{d[4].ID, d[1].ID},
		},
		{
			name:   "dimensions are ANDed",
			filter: usecase.InventoryFilter{Brands: []string{"Apple"}, Conditions: []entity.Condition{entity.ConditionGood}},
			want:   []uuid.UUID{d[4].ID},
		},
		{
			name:   "price range",
			filter: usecase.InventoryFilter{MinPrice: decimalPtr("300"), MaxPrice: decimalPtr("600")},
			want:   []uuid.UUID{d[4].ID, d[3].ID, d[0].ID},
		},
		{
			name:   "search matches type",
			filter: usecase.InventoryFilter{SearchTerm: "SMART"},
			want:   []uuid.UUID{d[2].ID},
		},
		{
			name:   "search matches description",
			filter: usecase.InventoryFilter{SearchTerm: "lenovo device"},
			want:   []uuid.UUID{d[3].ID},
		},
		{
			name:   "no match",
			filter: usecase.InventoryFilter{SearchTerm: "toaster"},
			want:   []uuid.UUID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := fx.inventoryService().List(context.Background(), usecase.InventoryQuery{Filter: tt.filter})

			require.NoError(t, err)
			assert.Equal(t, tt.want, collectIDs(page.Items))
			assert.Equal(t, len(tt.want), page.TotalCount)
		})
	}
}

func TestInventoryService_List_Pagination(t *testing.T) {
	fx := newStoreFixture(t)
	d := seedInventory(t, fx)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	srv := fx.inventoryService()
	ctx := context.Background()

	tests := []struct {
		page     int
		want     []uuid.UUID
		wantPage int
	}{
		{page: 0, want: []uuid.UUID{d[0].ID, d[1].ID}, wantPage: 1},
		{page: 2, want: []uuid.UUID{d[2].ID, d[3].ID}, wantPage: 2},
		{page: 3, want: []uuid.UUID{d[4].ID}, wantPage: 3},
		{page: 9, want: []uuid.UUID{}, wantPage: 9},
	}

	for _, tt := range tests {
		result, err := srv.List(ctx, usecase.InventoryQuery{Sort: usecase.SortOldest, Page: tt.page})

		require.NoError(t, err)
		assert.Equal(t, tt.want, collectIDs(result.Items))
		assert.Equal(t, tt.wantPage, result.Page)
		assert.Equal(t, 5, result.TotalCount)
		assert.Equal(t, 3, result.TotalPages)
	}
}

func TestInventoryService_List_AvailableOnly(t *testing.T) {
	fx := newStoreFixture(t)
	d := seedInventory(t, fx)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	ctx := context.Background()
	require.NoError(t, fx.inventoryRepo.MarkOrdered(ctx, []uuid.UUID{d[0].ID}, entity.OrderInfo{OrderID: uuid.New(), OrderedAt: testNow}))

	page, err := fx.inventoryService().List(ctx, usecase.InventoryQuery{Filter: usecase.InventoryFilter{AvailableOnly: true}})

	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalCount)
}

func TestInventoryService_List_RequiresCompanyOrAdmin(t *testing.T) {
	fx := newStoreFixture(t)
	fx.loginAs(t, "cust@example.com", entity.RoleCustomer)

	_, err := fx.inventoryService().List(context.Background(), usecase.InventoryQuery{})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestInventoryService_Add(t *testing.T) {
	fx := newStoreFixture(t)
	fx.loginAs(t, "admin@example.com", entity.RoleAdmin)
	ctx := context.Background()

	_, err := fx.inventoryService().Add(ctx, usecase.AddDeviceInput{Type: "Toaster", Brand: "X", Condition: entity.ConditionGood})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	device, err := fx.inventoryService().Add(ctx, usecase.AddDeviceInput{
		Type:      entity.DeviceTablet,
		Brand:     "Amazon",
		Model:     "Fire HD 8",
		Condition: entity.ConditionGood,
		Specs:     map[string]string{"storage": "32GB"},
		Value:     decimal.NewFromInt(35),
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", device.OwnerEmail)
	assert.Equal(t, testNow, device.ReceivedDate)

	got, err := fx.inventoryService().Get(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fire HD 8", got.Model)

	_, err = fx.inventoryService().Get(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
