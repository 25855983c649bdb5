package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"recyclemart/config"
	deliverycontext "recyclemart/internal/delivery/context"
	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/domain/service"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const metersPerKilometer = 1000.0

// orderService implements the OrderUsecase interface.
type orderService struct {
	gate          usecase.SessionUsecase
	inventoryRepo repository.InventoryRepository
	cartRepo      repository.CartRepository
	orderRepo     repository.OrderRepository
	txManager     repository.TransactionManager
	publisher     service.EventPublisher
	qrCodeService service.QRCodeService
	depot         *orb.Point
	logger        *slog.Logger
	now           func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Gate          usecase.SessionUsecase
	InventoryRepo repository.InventoryRepository
	CartRepo      repository.CartRepository
	OrderRepo     repository.OrderRepository
	TxManager     repository.TransactionManager
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		gate:          params.Gate,
		inventoryRepo: params.InventoryRepo,
		cartRepo:      params.CartRepo,
		orderRepo:     params.OrderRepo,
		txManager:     params.TxManager,
		publisher:     params.Publisher,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
		now:           time.Now,
	}
	if depot := params.Config.Depot; depot != nil && (depot.Latitude != 0 || depot.Longitude != 0) {
		srv.depot = &orb.Point{depot.Longitude, depot.Latitude}
	}

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return loggerFrom(ctx, srv.logger)
}

// AddToCart places an available device in the calling company's cart.
func (srv *orderService) AddToCart(ctx context.Context, input usecase.AddToCartInput) ([]*usecase.CartLine, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCompany)
	if err != nil {
		return nil, err
	}

	location := strings.TrimSpace(input.Location)
	switch {
	case !input.ShippingMethod.IsValid():
		return nil, validationError(fmt.Sprintf("unknown shipping method %q", input.ShippingMethod))
	case input.ShippingMethod == entity.ShippingPickup && location == "":
		return nil, validationError("a pickup location is required")
	}

	device, err := srv.inventoryRepo.FindByID(ctx, input.DeviceID)
	if err != nil {
		return nil, mapRepoError(err, "failed to add to cart")
	}
	if !device.IsAvailable() {
		return nil, errors.Wrap(domainerrors.ErrDeviceUnavailable, "failed to add to cart")
	}

	items, err := srv.cartRepo.List(ctx, actor.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	for _, item := range items {
		if item.DeviceID == input.DeviceID {
			return nil, validationError("device is already in the cart")
		}
	}

	item := &entity.CartItem{
		DeviceID:       input.DeviceID,
		ShippingMethod: input.ShippingMethod,
		Location:       location,
		AddedAt:        srv.now(),
	}
	if input.Coordinates != nil {
		point := *input.Coordinates
		item.Coordinates = &point
	}
	items = append(items, item)
	if err := srv.cartRepo.Save(ctx, actor.Email, items); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return srv.cartLines(ctx, items)
}

// RemoveFromCart drops a device from the calling company's cart. Removing an absent device is a no-op.
func (srv *orderService) RemoveFromCart(ctx context.Context, deviceID uuid.UUID) ([]*usecase.CartLine, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCompany)
	if err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.List(ctx, actor.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	kept := make([]*entity.CartItem, 0, len(items))
	for _, item := range items {
		if item.DeviceID != deviceID {
			kept = append(kept, item)
		}
	}
	if len(kept) != len(items) {
		if err := srv.cartRepo.Save(ctx, actor.Email, kept); err != nil {
			return nil, errors.Wrap(err, "failed to save cart")
		}
	}

	return srv.cartLines(ctx, kept)
}

// ListCart returns the calling company's cart with the current device state.
func (srv *orderService) ListCart(ctx context.Context) ([]*usecase.CartLine, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCompany)
	if err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.List(ctx, actor.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return srv.cartLines(ctx, items)
}

// cartLines joins cart items with their devices. A vanished device leaves a line without one.
func (srv *orderService) cartLines(ctx context.Context, items []*entity.CartItem) ([]*usecase.CartLine, error) {
	lines := make([]*usecase.CartLine, 0, len(items))
	for _, item := range items {
		device, err := srv.inventoryRepo.FindByID(ctx, item.DeviceID)
		switch {
		case errors.Is(err, repository.ErrDeviceNotFound):
			srv.log(ctx).Warn("Cart refers to a missing device", slog.String("deviceID", item.DeviceID.String()))
		case err != nil:
			return nil, errors.Wrap(err, "failed to load cart device")
		}
		lines = append(lines, &usecase.CartLine{Item: item, Device: device})
	}

	return lines, nil
}

// CreateOrder turns the calling company's cart into an order in one transaction.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (uuid.UUID, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCompany)
	if err != nil {
		return uuid.Nil, err
	}

	now := srv.now()
	order := &entity.Order{
		ID:           uuid.New(),
		CompanyEmail: actor.Email,
		CreatedAt:    now,
		Status:       entity.OrderProcessing,
		Notes:        strings.TrimSpace(input.Notes),
		Total:        decimal.Zero,
	}
	if input.PickupDate != nil {
		pickup := *input.PickupDate
		order.PickupDate = &pickup
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		items, err := txRepoFactory.CartRepo().List(ctx, actor.Email)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		ids := make([]uuid.UUID, 0, len(items))
		order.Items = make([]entity.OrderItem, 0, len(items))
		for _, item := range items {
			device, err := txRepoFactory.InventoryRepo().FindByID(ctx, item.DeviceID)
			if err != nil {
				return err
			}
			snapshot := entity.SnapshotItem(item, device)
			snapshot.DistanceKm = srv.distanceFromDepot(item.Coordinates)
			order.Items = append(order.Items, snapshot)
			order.Total = order.Total.Add(device.Value)
			ids = append(ids, item.DeviceID)
		}

		if err := txRepoFactory.InventoryRepo().MarkOrdered(ctx, ids, entity.OrderInfo{OrderID: order.ID, OrderedAt: now}); err != nil {
			return err
		}

		order.AppendEvent(entity.EventOrderCreated, now, fmt.Sprintf("Order placed for %d devices", len(items)))
		if err := txRepoFactory.OrderRepo().Create(ctx, order); err != nil {
			return err
		}

		return txRepoFactory.CartRepo().Clear(ctx, actor.Email)
	})
	if err != nil {
		return uuid.Nil, mapRepoError(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("company", actor.Email),
		slog.Int("items", len(order.Items)),
		slog.String("total", order.Total.String()),
	)
	srv.publish(ctx, order, entity.EventOrderCreated)

	return order.ID, nil
}

// distanceFromDepot is the great-circle distance in km, nil when either end is unknown.
func (srv *orderService) distanceFromDepot(coordinates *orb.Point) *float64 {
	if srv.depot == nil || coordinates == nil {
		return nil
	}
	km := geo.Distance(*srv.depot, *coordinates) / metersPerKilometer

	return &km
}

// UpdateStatus completes or cancels a processing order. Companies may only touch their own orders.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCompany, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, validationError(fmt.Sprintf("unknown order status %q", status))
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var err error
		order, err = txRepoFactory.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !canSee(actor, order) {
			return repository.ErrOrderNotFound
		}
		if !order.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidTransition.WithDetails(fmt.Sprintf("%s -> %s", order.Status, status))
		}

		order.Status = status
		order.AppendEvent(entity.EventTypeFor(status), srv.now(), fmt.Sprintf("Order %s by %s", status, actor.Email))

		return txRepoFactory.OrderRepo().Update(ctx, order)
	})
	if err != nil {
		return nil, mapRepoError(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status changed", slog.String("orderID", orderID.String()), slog.String("status", string(status)))
	srv.publish(ctx, order, entity.EventTypeFor(status))

	return order, nil
}

// ListOrders returns the caller's orders, or every order for an admin.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCompany, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	visible := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if canSee(actor, order) {
			visible = append(visible, order)
		}
	}

	return visible, nil
}

// GetOrder returns one order. Another company's order reads as not found.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCompany, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapRepoError(err, "failed to get order")
	}
	if !canSee(actor, order) {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "failed to get order")
	}

	return order, nil
}

// PickupLabel renders the order's QR pickup label as PNG.
func (srv *orderService) PickupLabel(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GeneratePickupLabel(order.ID, order.PickupDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup label")
	}

	return png, nil
}

// publish reports an order change downstream. A failed publish never undoes the committed order.
func (srv *orderService) publish(ctx context.Context, order *entity.Order, eventType string) {
	deviceIDs := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		deviceIDs = append(deviceIDs, item.DeviceID.String())
	}

	event := &service.OrderEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:      order.ID.String(),
		CompanyEmail: order.CompanyEmail,
		Type:         eventType,
		Status:       string(order.Status),
		DeviceIDs:    deviceIDs,
		Total:        order.Total.StringFixed(2),
		OccurredAt:   srv.now(),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("orderID", event.OrderID),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

func canSee(actor *entity.Actor, order *entity.Order) bool {
	return actor.Role == entity.RoleAdmin || order.CompanyEmail == actor.Email
}
