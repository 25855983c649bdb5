package impl

import (
	"context"
	"log/slog"
	"time"

	"recyclemart/config"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/domain/service"
	"recyclemart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	gate          usecase.SessionUsecase
	userRepo      repository.UserRepository
	requestRepo   repository.RecycleRequestRepository
	inventoryRepo repository.InventoryRepository
	orderRepo     repository.OrderRepository
	health        service.StorageHealth
	activeWindow  time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Gate          usecase.SessionUsecase
	UserRepo      repository.UserRepository
	RequestRepo   repository.RecycleRequestRepository
	InventoryRepo repository.InventoryRepository
	OrderRepo     repository.OrderRepository
	Health        service.StorageHealth
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		gate:          params.Gate,
		userRepo:      params.UserRepo,
		requestRepo:   params.RequestRepo,
		inventoryRepo: params.InventoryRepo,
		orderRepo:     params.OrderRepo,
		health:        params.Health,
		activeWindow:  params.Config.Dashboard.ActiveWindow,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return loggerFrom(ctx, srv.logger)
}

// Stats aggregates the admin overview from every collection. Admin only.
func (srv *dashboardService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}

	stats := &usecase.DashboardStats{
		UsersByRole:      map[entity.Role]int{},
		RequestsByStatus: map[entity.RequestStatus]int{},
		TotalQuotedValue: decimal.Zero,
		OrdersByStatus:   map[entity.OrderStatus]int{},
		StorageDegraded:  srv.health.Degraded(),
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	activeSince := srv.now().Add(-srv.activeWindow)
	for _, user := range users {
		stats.TotalUsers++
		stats.UsersByRole[user.Role]++
		stats.TotalPoints += user.Profile.Points
		if user.LastLogin != nil && !user.LastLogin.Before(activeSince) {
			stats.ActiveUsers++
		}
	}

	stats.DevicesByType, err = srv.inventoryRepo.CountByType(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count devices")
	}

	requests, err := srv.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}
	for _, request := range requests {
		stats.RequestsByStatus[request.Status]++
		if request.QuoteAmount != nil && request.Status != entity.RequestRejected {
			stats.TotalQuotedValue = stats.TotalQuotedValue.Add(*request.QuoteAmount)
		}
	}

	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	for _, order := range orders {
		stats.OrdersByStatus[order.Status]++
	}

	if stats.StorageDegraded {
		srv.log(ctx).Warn("Dashboard served from degraded storage")
	}

	return stats, nil
}
