package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"recyclemart/internal/delivery/api/response"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	QuoteUC usecase.QuoteUsecase
	Logger  *slog.Logger
}

// QuoteHandler handles recycle requests and their quotes.
type QuoteHandler struct {
	quoteUC usecase.QuoteUsecase
	logger  *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler.
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{
		quoteUC: params.QuoteUC,
		logger:  params.Logger,
	}
}

// SubmitRequest represents the request body for a new recycle request
type SubmitRequest struct {
	DeviceType        string   `json:"device_type" validate:"required"`
	Brand             string   `json:"brand"`
	Model             string   `json:"model"`
	DeviceDescription string   `json:"device_description" validate:"required"`
	Condition         string   `json:"condition" validate:"required"`
	Images            []string `json:"images"`
}

// SetQuoteRequest represents the request body for quoting a request
type SetQuoteRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SetStatusRequest represents the request body for a status change
type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Submit creates a recycle request for the caller.
func (h *QuoteHandler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recycle request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	id, err := h.quoteUC.Submit(c.Request().Context(), usecase.SubmitRequestInput{
		DeviceType:        req.DeviceType,
		Brand:             req.Brand,
		Model:             req.Model,
		DeviceDescription: req.DeviceDescription,
		Condition:         entity.Condition(req.Condition),
		Images:            req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id.String()})
}

// ListMine returns the caller's requests.
func (h *QuoteHandler) ListMine(c echo.Context) error {
	requests, err := h.quoteUC.ListMine(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// ListAll returns every request (admin).
func (h *QuoteHandler) ListAll(c echo.Context) error {
	requests, err := h.quoteUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// Recent returns the newest requests (admin). limit=0 or absent uses the configured default.
func (h *QuoteHandler) Recent(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	requests, err := h.quoteUC.Recent(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// SetQuote sets the quote amount on a request (admin).
func (h *QuoteHandler) SetQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	var req SetQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}

	request, err := h.quoteUC.SetQuote(c.Request().Context(), id, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// SetStatus moves a request to a new status (admin).
func (h *QuoteHandler) SetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	request, err := h.quoteUC.SetStatus(c.Request().Context(), id, entity.RequestStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}
