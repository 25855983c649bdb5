package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"recyclemart/config"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fallbackPageSize = 9

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	gate          usecase.SessionUsecase
	inventoryRepo repository.InventoryRepository
	pageSize      int
	logger        *slog.Logger
	now           func() time.Time
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	Gate          usecase.SessionUsecase
	InventoryRepo repository.InventoryRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	pageSize := fallbackPageSize
	if params.Config.Inventory != nil && params.Config.Inventory.PageSize > 0 {
		pageSize = params.Config.Inventory.PageSize
	}

	return &inventoryService{
		gate:          params.Gate,
		inventoryRepo: params.InventoryRepo,
		pageSize:      pageSize,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return loggerFrom(ctx, srv.logger)
}

var deviceSorts = map[string]func(a, b *entity.InventoryDevice) int{
	usecase.SortNewest: func(a, b *entity.InventoryDevice) int {
		return b.ReceivedDate.Compare(a.ReceivedDate)
	},
	usecase.SortOldest: func(a, b *entity.InventoryDevice) int {
		return a.ReceivedDate.Compare(b.ReceivedDate)
	},
	usecase.SortPriceAsc: func(a, b *entity.InventoryDevice) int {
		return a.Value.Cmp(b.Value)
	},
	usecase.SortPriceDesc: func(a, b *entity.InventoryDevice) int {
		return b.Value.Cmp(a.Value)
	},
	usecase.SortConditionRank: func(a, b *entity.InventoryDevice) int {
		return a.Condition.Rank() - b.Condition.Rank()
	},
}

// List filters, sorts and paginates the inventory.
func (srv *inventoryService) List(ctx context.Context, query usecase.InventoryQuery) (*usecase.InventoryPage, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleCompany, entity.RoleAdmin); err != nil {
		return nil, err
	}

	sortKey := query.Sort
	if sortKey == "" {
		sortKey = usecase.SortNewest
	}
	compare, ok := deviceSorts[sortKey]
	if !ok {
		return nil, validationError(fmt.Sprintf("unknown sort %q", query.Sort))
	}

	devices, err := srv.inventoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	matched := make([]*entity.InventoryDevice, 0, len(devices))
	for _, device := range devices {
		if matchesFilter(device, &query.Filter) {
			matched = append(matched, device)
		}
	}
	slices.SortStableFunc(matched, compare)

	page := max(query.Page, 1)
	total := len(matched)
	start := min((page-1)*srv.pageSize, total)
	end := min(start+srv.pageSize, total)

	return &usecase.InventoryPage{
		Items:      matched[start:end],
		TotalCount: total,
		TotalPages: (total + srv.pageSize - 1) / srv.pageSize,
		Page:       page,
	}, nil
}

// matchesFilter ANDs the filter dimensions; values inside one dimension are ORed.
func matchesFilter(device *entity.InventoryDevice, filter *usecase.InventoryFilter) bool {
	if len(filter.Types) > 0 && !slices.Contains(filter.Types, device.Type) {
		return false
	}
	if len(filter.Conditions) > 0 && !slices.Contains(filter.Conditions, device.Condition) {
		return false
	}
	if len(filter.Brands) > 0 && !slices.ContainsFunc(filter.Brands, func(brand string) bool {
		return strings.EqualFold(strings.TrimSpace(brand), device.Brand)
	}) {
		return false
	}
	if filter.MinPrice != nil && device.Value.LessThan(*filter.MinPrice) {
		return false
	}
	if filter.MaxPrice != nil && device.Value.GreaterThan(*filter.MaxPrice) {
		return false
	}
	if filter.AvailableOnly && !device.IsAvailable() {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(filter.SearchTerm))
	if term == "" {
		return true
	}
	for _, field := range []string{device.Name(), device.Brand, device.Description, string(device.Type)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

// Get returns one device.
func (srv *inventoryService) Get(ctx context.Context, id uuid.UUID) (*entity.InventoryDevice, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleCompany, entity.RoleAdmin); err != nil {
		return nil, err
	}

	device, err := srv.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to get device")
	}

	return device, nil
}

// Add registers a device by hand. Admin only.
func (srv *inventoryService) Add(ctx context.Context, input usecase.AddDeviceInput) (*entity.InventoryDevice, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	switch {
	case !input.Type.IsValid():
		return nil, validationError(fmt.Sprintf("unknown device type %q", input.Type))
	case !input.Condition.IsValid():
		return nil, validationError(fmt.Sprintf("unknown condition %q", input.Condition))
	case strings.TrimSpace(input.Brand) == "" && strings.TrimSpace(input.Model) == "":
		return nil, validationError("brand or model is required")
	case input.Value.IsNegative():
		return nil, validationError("value must not be negative")
	}

	owner := strings.TrimSpace(input.OwnerEmail)
	if owner == "" {
		owner = actor.Email
	}
	specs := make(map[string]string, len(input.Specs))
	for name, value := range input.Specs {
		specs[name] = value
	}

	device := &entity.InventoryDevice{
		ID:           uuid.New(),
		Type:         input.Type,
		Brand:        strings.TrimSpace(input.Brand),
		Model:        strings.TrimSpace(input.Model),
		Description:  strings.TrimSpace(input.Description),
		Condition:    input.Condition,
		Specs:        specs,
		ReceivedDate: srv.now(),
		Value:        input.Value,
		OwnerEmail:   owner,
		Status:       entity.DeviceAvailable,
	}
	if err := srv.inventoryRepo.Create(ctx, device); err != nil {
		return nil, mapRepoError(err, "failed to add device")
	}

	srv.log(ctx).Info("Device added to inventory", slog.String("deviceID", device.ID.String()), slog.String("type", string(device.Type)))

	return device, nil
}

// CountByType counts every device per type.
func (srv *inventoryService) CountByType(ctx context.Context) (map[entity.DeviceType]int, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleCompany, entity.RoleAdmin); err != nil {
		return nil, err
	}

	counts, err := srv.inventoryRepo.CountByType(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count inventory")
	}

	return counts, nil
}
