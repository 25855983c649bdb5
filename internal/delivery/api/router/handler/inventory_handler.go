package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"recyclemart/internal/delivery/api/response"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler handles the processed device inventory.
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler.
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// AddDeviceRequest represents the request body for registering a device by hand
type AddDeviceRequest struct {
	Type        string            `json:"type" validate:"required"`
	Brand       string            `json:"brand" validate:"required"`
	Model       string            `json:"model" validate:"required"`
	Description string            `json:"description"`
	Condition   string            `json:"condition" validate:"required"`
	Specs       map[string]string `json:"specs"`
	Value       decimal.Decimal   `json:"value"`
	OwnerEmail  string            `json:"owner_email" validate:"omitempty,email"`
}

// InventoryPageResponse is one page of the inventory
type InventoryPageResponse struct {
	Items      []*entity.InventoryDevice `json:"items"`
	TotalCount int                       `json:"total_count"`
	TotalPages int                       `json:"total_pages"`
	Page       int                       `json:"page"`
}

// List returns one filtered, sorted page of the inventory.
// Query: type, brand, condition (repeatable or comma separated), min_price, max_price, q, available, sort, page.
func (h *InventoryHandler) List(c echo.Context) error {
	query, err := parseInventoryQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	page, err := h.inventoryUC.List(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, InventoryPageResponse{
		Items:      page.Items,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.Page,
	})
}

// Get returns one device.
func (h *InventoryHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	device, err := h.inventoryUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// Add registers a device by hand (admin).
func (h *InventoryHandler) Add(c echo.Context) error {
	var req AddDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	device, err := h.inventoryUC.Add(c.Request().Context(), usecase.AddDeviceInput{
		Type:        entity.DeviceType(req.Type),
		Brand:       req.Brand,
		Model:       req.Model,
		Description: req.Description,
		Condition:   entity.Condition(req.Condition),
		Specs:       req.Specs,
		Value:       req.Value,
		OwnerEmail:  req.OwnerEmail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// CountByType returns the number of devices per type.
func (h *InventoryHandler) CountByType(c echo.Context) error {
	counts, err := h.inventoryUC.CountByType(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, counts)
}

func parseInventoryQuery(c echo.Context) (usecase.InventoryQuery, error) {
	query := usecase.InventoryQuery{
		Sort: c.QueryParam("sort"),
		Page: 1,
	}

	for _, t := range queryList(c, "type") {
		query.Filter.Types = append(query.Filter.Types, entity.DeviceType(t))
	}
	query.Filter.Brands = queryList(c, "brand")
	for _, cond := range queryList(c, "condition") {
		query.Filter.Conditions = append(query.Filter.Conditions, entity.Condition(cond))
	}
	query.Filter.SearchTerm = strings.TrimSpace(c.QueryParam("q"))

	var err error
	if query.Filter.MinPrice, err = queryDecimal(c, "min_price"); err != nil {
		return query, err
	}
	if query.Filter.MaxPrice, err = queryDecimal(c, "max_price"); err != nil {
		return query, err
	}

	if raw := c.QueryParam("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return query, errors.New("available must be a boolean")
		}
		query.Filter.AvailableOnly = available
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, errors.New("page must be an integer")
		}
		query.Page = page
	}

	return query, nil
}

// queryList collects a repeatable query parameter, splitting comma separated values.
func queryList(c echo.Context, name string) []string {
	var values []string
	for _, raw := range c.QueryParams()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}

	return values
}

func queryDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}

	return &value, nil
}
