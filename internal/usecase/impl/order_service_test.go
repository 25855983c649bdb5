package impl

import (
	"context"
	"testing"
	"time"

	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/service"
	mockRepo "recyclemart/internal/mocks/repository"
	mockSvc "recyclemart/internal/mocks/service"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds the order service and its mocked collaborators.
type orderServiceFixtures struct {
	*storeFixture
	service   *orderService
	publisher *mockSvc.MockEventPublisher
	qr        *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	store := newStoreFixture(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qr := mockSvc.NewMockQRCodeService(t)

	return orderServiceFixtures{
		storeFixture: store,
		service:      store.orderService(publisher, qr),
		publisher:    publisher,
		qr:           qr,
	}
}

func (fx orderServiceFixtures) fillCart(t *testing.T, devices ...*entity.InventoryDevice) {
	t.Helper()

	for _, device := range devices {
		_, err := fx.service.AddToCart(context.Background(), usecase.AddToCartInput{
			DeviceID:       device.ID,
			ShippingMethod: entity.ShippingPickup,
			Location:       "221B Baker Street, London",
			Coordinates:    &orb.Point{-0.1586, 51.5238},
		})
		require.NoError(t, err)
	}
}

func TestOrderService_CreateOrder_ThreeItems(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	received := testNow.Add(-48 * time.Hour)
	devices := []*entity.InventoryDevice{
		fx.addDevice(t, entity.DeviceLaptop, "Dell", "400", entity.ConditionGood, received),
		fx.addDevice(t, entity.DeviceSmartphone, "Apple", "250.50", entity.ConditionExcellent, received),
		fx.addDevice(t, entity.DeviceTablet, "Lenovo", "49.50", entity.ConditionFair, received),
	}
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.fillCart(t, devices...)

	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.MatchedBy(func(event *service.OrderEvent) bool {
		return event.Type == entity.EventOrderCreated && len(event.DeviceIDs) == 3 && event.Total == "700.00"
	})).Return(nil)

	pickup := testNow.Add(72 * time.Hour)
	orderID, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{PickupDate: &pickup, Notes: " loading dock B "})
	require.NoError(t, err)

	// Every device is marked ordered with this order's info.
	for _, device := range devices {
		stored, err := fx.inventoryRepo.FindByID(ctx, device.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.DeviceOrdered, stored.Status)
		require.NotNil(t, stored.OrderInfo)
		assert.Equal(t, orderID, stored.OrderInfo.OrderID)
	}

	// The cart is empty.
	cart, err := fx.service.ListCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	order, err := fx.service.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, order.Status)
	assert.Equal(t, "co@example.com", order.CompanyEmail)
	assert.Equal(t, "loading dock B", order.Notes)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(700)))
	require.Len(t, order.Items, 3)
	require.Len(t, order.Events, 1)
	assert.Equal(t, entity.EventOrderCreated, order.Events[0].Type)
	require.NotNil(t, order.Items[0].DistanceKm)
	assert.InDelta(t, 2.8, *order.Items[0].DistanceKm, 0.3)

	// Snapshots survive later device mutation.
	mutated, err := fx.inventoryRepo.FindByID(ctx, devices[0].ID)
	require.NoError(t, err)
	mutated.Brand = "Changed"
	mutated.Value = decimal.NewFromInt(1)
	mutated.Specs["storage"] = "1TB"
	require.NoError(t, fx.inventoryRepo.Update(ctx, mutated))

	order, err = fx.service.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "Dell", order.Items[0].Brand)
	assert.True(t, order.Items[0].Value.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, "128GB", order.Items[0].Specs["storage"])
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)

	_, err := fx.service.CreateOrder(context.Background(), usecase.CreateOrderInput{})

	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_CreateOrder_DeviceOrderedMeanwhile(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	first := fx.addDevice(t, entity.DeviceLaptop, "Dell", "400", entity.ConditionGood, testNow)
	second := fx.addDevice(t, entity.DeviceLaptop, "HP", "300", entity.ConditionGood, testNow)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.fillCart(t, first, second)

	// Another order claims the second device before checkout.
	require.NoError(t, fx.inventoryRepo.MarkOrdered(ctx, []uuid.UUID{second.ID}, entity.OrderInfo{OrderID: uuid.New(), OrderedAt: testNow}))

	_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceUnavailable)

	// Nothing changed: first device still available, cart intact, no order.
	stored, err := fx.inventoryRepo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsAvailable())
	cart, err := fx.service.ListCart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart, 2)
	orders, err := fx.orderRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CreateOrder_PublishFailureKeepsOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	device := fx.addDevice(t, entity.DeviceLaptop, "Dell", "400", entity.ConditionGood, testNow)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.fillCart(t, device)

	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	orderID, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{})
	require.NoError(t, err)

	_, err = fx.orderRepo.FindByID(ctx, orderID)
	assert.NoError(t, err)
}

func TestOrderService_CreateOrder_CommitFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	device := fx.addDevice(t, entity.DeviceLaptop, "Dell", "400", entity.ConditionGood, testNow)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.fillCart(t, device)

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(domainerrors.NewStorageExecuteError(errors.New("quota exceeded"), "apply"))
	fx.service.txManager = txManager

	_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStorage)

	// Nothing was published and the cart is untouched.
	lines, err := fx.service.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, device.ID, lines[0].Item.DeviceID)

	stored, err := fx.inventoryRepo.FindByID(ctx, device.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsAvailable())
}

func TestOrderService_AddToCart_Rejections(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	device := fx.addDevice(t, entity.DeviceLaptop, "Dell", "400", entity.ConditionGood, testNow)
	ordered := fx.addDevice(t, entity.DeviceLaptop, "HP", "300", entity.ConditionGood, testNow)
	require.NoError(t, fx.inventoryRepo.MarkOrdered(ctx, []uuid.UUID{ordered.ID}, entity.OrderInfo{OrderID: uuid.New(), OrderedAt: testNow}))
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.fillCart(t, device)

	tests := []struct {
		name      string
		input     usecase.AddToCartInput
		wantError error
	}{
		{
			name:      "unknown shipping method",
			input:     usecase.AddToCartInput{DeviceID: device.ID, ShippingMethod: "drone"},
			wantError: domainerrors.ErrValidationFailed,
		},
		{
			name:      "pickup without location",
			input:     usecase.AddToCartInput{DeviceID: device.ID, ShippingMethod: entity.ShippingPickup},
			wantError: domainerrors.ErrValidationFailed,
		},
		{
			name:      "already in cart",
			input:     usecase.AddToCartInput{DeviceID: device.ID, ShippingMethod: entity.ShippingVisit},
			wantError: domainerrors.ErrValidationFailed,
		},
		{
			name:      "already ordered",
			input:     usecase.AddToCartInput{DeviceID: ordered.ID, ShippingMethod: entity.ShippingVisit},
			wantError: domainerrors.ErrDeviceUnavailable,
		},
		{
			name:      "unknown device",
			input:     usecase.AddToCartInput{DeviceID: uuid.New(), ShippingMethod: entity.ShippingVisit},
			wantError: domainerrors.ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.AddToCart(ctx, tt.input)

			assert.ErrorIs(t, err, tt.wantError)
		})
	}

	fx.loginAs(t, "cust@example.com", entity.RoleCustomer)
	_, err := fx.service.AddToCart(ctx, usecase.AddToCartInput{DeviceID: device.ID, ShippingMethod: entity.ShippingVisit})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_RemoveFromCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	a := fx.addDevice(t, entity.DeviceLaptop, "Dell", "400", entity.ConditionGood, testNow)
	b := fx.addDevice(t, entity.DeviceLaptop, "HP", "300", entity.ConditionGood, testNow)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.fillCart(t, a, b)

	lines, err := fx.service.RemoveFromCart(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, b.ID, lines[0].Item.DeviceID)
	assert.Equal(t, "HP", lines[0].Device.Brand)

	lines, err = fx.service.RemoveFromCart(ctx, uuid.New())
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	device := fx.addDevice(t, entity.DeviceLaptop, "Dell", "400", entity.ConditionGood, testNow)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.fillCart(t, device)
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

	orderID, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{})
	require.NoError(t, err)

	_, err = fx.service.UpdateStatus(ctx, orderID, entity.OrderProcessing)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	// An event stamped before the last one is clamped forward.
	fx.service.now = func() time.Time { return testNow.Add(-time.Hour) }
	order, err := fx.service.UpdateStatus(ctx, orderID, entity.OrderCanceled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCanceled, order.Status)
	require.Len(t, order.Events, 2)
	assert.Equal(t, entity.EventOrderCanceled, order.Events[1].Type)
	assert.False(t, order.Events[1].Date.Before(order.Events[0].Date))

	_, err = fx.service.UpdateStatus(ctx, orderID, entity.OrderCompleted)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	// Canceling leaves the device claimed by the order.
	stored, err := fx.inventoryRepo.FindByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceOrdered, stored.Status)
}

func TestOrderService_Ownership(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	device := fx.addDevice(t, entity.DeviceLaptop, "Dell", "400", entity.ConditionGood, testNow)
	fx.loginAs(t, "owner@example.com", entity.RoleCompany)
	fx.fillCart(t, device)
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
	orderID, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{})
	require.NoError(t, err)

	fx.loginAs(t, "rival@example.com", entity.RoleCompany)
	_, err = fx.service.GetOrder(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	_, err = fx.service.UpdateStatus(ctx, orderID, entity.OrderCanceled)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	orders, err := fx.service.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	fx.loginAs(t, "admin@example.com", entity.RoleAdmin)
	orders, err = fx.service.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_PickupLabel(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	device := fx.addDevice(t, entity.DeviceLaptop, "Dell", "400", entity.ConditionGood, testNow)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)
	fx.fillCart(t, device)
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
	pickup := testNow.Add(24 * time.Hour)
	orderID, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{PickupDate: &pickup})
	require.NoError(t, err)

	fx.qr.EXPECT().GeneratePickupLabel(orderID, mock.MatchedBy(func(date *time.Time) bool {
		return date != nil && date.Equal(pickup)
	})).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.PickupLabel(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
