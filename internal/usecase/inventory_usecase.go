package usecase

import (
	"context"

	"recyclemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventory sort orders.
const (
	SortNewest        = "newest"
	SortOldest        = "oldest"
	SortPriceAsc      = "price-asc"
	SortPriceDesc     = "price-desc"
	SortConditionRank = "condition-rank"
)

// InventoryFilter narrows the inventory. Dimensions are ANDed, values inside one dimension ORed.
type InventoryFilter struct {
	Types         []entity.DeviceType
	Brands        []string
	Conditions    []entity.Condition
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	SearchTerm    string
	AvailableOnly bool
}

// InventoryQuery is one page request.
type InventoryQuery struct {
	Filter InventoryFilter
	Sort   string
	Page   int // 1-based
}

// InventoryPage is the result of one page request.
type InventoryPage struct {
	Items      []*entity.InventoryDevice
	TotalCount int
	TotalPages int
	Page       int
}

// AddDeviceInput defines a device registered by hand.
type AddDeviceInput struct {
	Type        entity.DeviceType
	Brand       string
	Model       string
	Description string
	Condition   entity.Condition
	Specs       map[string]string
	Value       decimal.Decimal
	OwnerEmail  string
}

// InventoryUsecase defines browsing and maintenance of processed devices.
type InventoryUsecase interface {
	List(ctx context.Context, query InventoryQuery) (*InventoryPage, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.InventoryDevice, error)
	Add(ctx context.Context, input AddDeviceInput) (*entity.InventoryDevice, error)
	CountByType(ctx context.Context) (map[entity.DeviceType]int, error)
}
