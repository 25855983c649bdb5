package handler

import (
	"log/slog"
	"net/http"
	"time"

	"recyclemart/internal/delivery/api/response"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler handles the company cart and orders.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// AddToCartRequest represents the request body for adding a device to the cart
type AddToCartRequest struct {
	DeviceID       uuid.UUID `json:"device_id" validate:"required"`
	ShippingMethod string    `json:"shipping_method" validate:"required,oneof=pickup visit"`
	Location       string    `json:"location"`
	Latitude       *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64  `json:"longitude" validate:"omitempty,longitude"`
}

// CreateOrderRequest represents the request body for checkout
type CreateOrderRequest struct {
	PickupDate string `json:"pickup_date" validate:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notes"`
}

// UpdateOrderStatusRequest represents the request body for an order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CartLineResponse pairs a cart item with its device
type CartLineResponse struct {
	Item   *entity.CartItem        `json:"item"`
	Device *entity.InventoryDevice `json:"device"`
}

// ListCart returns the caller's cart.
func (h *OrderHandler) ListCart(c echo.Context) error {
	lines, err := h.orderUC.ListCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(lines))
}

// AddToCart places a device in the caller's cart.
func (h *OrderHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		return response.ValidationFailed(c, "latitude and longitude must be set together")
	}

	input := usecase.AddToCartInput{
		DeviceID:       req.DeviceID,
		ShippingMethod: entity.ShippingMethod(req.ShippingMethod),
		Location:       req.Location,
	}
	if req.Latitude != nil {
		input.Coordinates = &orb.Point{*req.Longitude, *req.Latitude}
	}

	lines, err := h.orderUC.AddToCart(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(lines))
}

// RemoveFromCart drops a device from the caller's cart.
func (h *OrderHandler) RemoveFromCart(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	lines, err := h.orderUC.RemoveFromCart(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(lines))
}

// CreateOrder checks out the caller's cart.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	input := usecase.CreateOrderInput{Notes: req.Notes}
	if req.PickupDate != "" {
		pickup, err := time.Parse(time.DateOnly, req.PickupDate)
		if err != nil {
			return response.ValidationFailed(c, "pickup_date must be YYYY-MM-DD")
		}
		input.PickupDate = &pickup
	}

	orderID, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ListOrders returns the orders visible to the caller.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus moves an order to a new status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// PickupLabel returns the order's pickup QR code as a PNG image.
func (h *OrderHandler) PickupLabel(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.PickupLabel(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func toCartResponse(lines []*usecase.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, CartLineResponse{Item: line.Item, Device: line.Device})
	}

	return out
}
