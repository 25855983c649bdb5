package usecase

import (
	"context"

	"recyclemart/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DashboardStats aggregates the admin overview.
type DashboardStats struct {
	TotalUsers       int
	ActiveUsers      int
	UsersByRole      map[entity.Role]int
	TotalPoints      int
	DevicesByType    map[entity.DeviceType]int
	RequestsByStatus map[entity.RequestStatus]int
	TotalQuotedValue decimal.Decimal
	OrdersByStatus   map[entity.OrderStatus]int
	StorageDegraded  bool
}

// DashboardUsecase defines the admin statistics.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

// SeedReport counts what a seeding run created.
type SeedReport struct {
	Users    int
	Vouchers int
	Products int
	Devices  int
}

// SeedUsecase loads demo data into empty collections.
type SeedUsecase interface {
	Seed(ctx context.Context) (*SeedReport, error)
}
