package handler

import (
	"log/slog"
	"net/http"

	"recyclemart/internal/delivery/api/response"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/service"
	"recyclemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Health      service.StorageHealth
	Logger      *slog.Logger
}

// DashboardHandler serves admin statistics and the health probe.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	health      service.StorageHealth
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		health:      params.Health,
		logger:      params.Logger,
	}
}

// DashboardResponse is the admin overview
type DashboardResponse struct {
	TotalUsers       int                          `json:"total_users"`
	ActiveUsers      int                          `json:"active_users"`
	UsersByRole      map[entity.Role]int          `json:"users_by_role"`
	TotalPoints      int                          `json:"total_points"`
	DevicesByType    map[entity.DeviceType]int    `json:"devices_by_type"`
	RequestsByStatus map[entity.RequestStatus]int `json:"requests_by_status"`
	TotalQuotedValue decimal.Decimal              `json:"total_quoted_value"`
	OrdersByStatus   map[entity.OrderStatus]int   `json:"orders_by_status"`
	StorageDegraded  bool                         `json:"storage_degraded"`
}

// HealthResponse reports whether the service is up and whether storage is durable
type HealthResponse struct {
	Status   string `json:"status"`
	Degraded bool   `json:"degraded"`
}

// Stats returns the admin overview.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DashboardResponse{
		TotalUsers:       stats.TotalUsers,
		ActiveUsers:      stats.ActiveUsers,
		UsersByRole:      stats.UsersByRole,
		TotalPoints:      stats.TotalPoints,
		DevicesByType:    stats.DevicesByType,
		RequestsByStatus: stats.RequestsByStatus,
		TotalQuotedValue: stats.TotalQuotedValue,
		OrdersByStatus:   stats.OrdersByStatus,
		StorageDegraded:  stats.StorageDegraded,
	})
}

// HealthCheck reports the service status. Degraded storage still answers 200.
func (h *DashboardHandler) HealthCheck(c echo.Context) error {
	resp := HealthResponse{Status: "ok"}
	if h.health != nil && h.health.Degraded() {
		resp.Status = "degraded"
		resp.Degraded = true
	}

	return response.Success(c, http.StatusOK, resp)
}
