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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// seedService implements the SeedUsecase interface. It bypasses the session gate and is
// meant for startup and operator tooling only.
type seedService struct {
	userRepo      repository.UserRepository
	voucherRepo   repository.VoucherRepository
	productRepo   repository.MarketProductRepository
	inventoryRepo repository.InventoryRepository
	hasher        service.PasswordHasher
	cfg           *config.SeedConfig
	logger        *slog.Logger
	now           func() time.Time
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	VoucherRepo   repository.VoucherRepository
	ProductRepo   repository.MarketProductRepository
	InventoryRepo repository.InventoryRepository
	Hasher        service.PasswordHasher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		userRepo:      params.UserRepo,
		voucherRepo:   params.VoucherRepo,
		productRepo:   params.ProductRepo,
		inventoryRepo: params.InventoryRepo,
		hasher:        params.Hasher,
		cfg:           params.Config.Seed,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *seedService) log(ctx context.Context) *slog.Logger {
	return loggerFrom(ctx, srv.logger)
}

var seedVouchers = []entity.Voucher{
	{Market: "GreenMart", Value: 100, Discount: decimal.NewFromInt(5), Currency: "$"},
	{Market: "GreenMart", Value: 250, Discount: decimal.NewFromInt(15), Currency: "$"},
	{Market: "EcoFresh", Value: 500, Discount: decimal.NewFromInt(35), Currency: "$"},
}

var seedProducts = []entity.MarketProduct{
	{Name: "Reusable Shopping Bag", Market: "GreenMart", Price: decimal.RequireFromString("4.99"), Description: "Woven bag made from recycled bottles"},
	{Name: "Bamboo Cutlery Set", Market: "GreenMart", Price: decimal.RequireFromString("12.50"), Description: "Fork, knife and spoon in a travel pouch"},
	{Name: "Organic Coffee Beans", Market: "EcoFresh", Price: decimal.RequireFromString("18.00"), Description: "Fair trade, 500g"},
	{Name: "Solar Power Bank", Market: "EcoFresh", Price: decimal.RequireFromString("45.50"), Description: "10000mAh with a foldable panel"},
}

var seedDevices = []entity.InventoryDevice{
	{Type: entity.DeviceLaptop, Brand: "Dell", Model: "Latitude 7490", Description: "Business laptop, battery replaced", Condition: entity.ConditionGood, Specs: map[string]string{"cpu": "i5-8350U", "ram": "16GB", "storage": "256GB SSD"}, Value: decimal.NewFromInt(420)},
	{Type: entity.DeviceLaptop, Brand: "Apple", Model: "MacBook Pro 2017", Description: "Light scratches on the lid", Condition: entity.ConditionFair, Specs: map[string]string{"cpu": "i7", "ram": "16GB", "storage": "512GB SSD"}, Value: decimal.NewFromInt(650)},
	{Type: entity.DeviceSmartphone, Brand: "Samsung", Model: "Galaxy S10", Description: "Screen intact, back glass cracked", Condition: entity.ConditionFair, Specs: map[string]string{"storage": "128GB"}, Value: decimal.NewFromInt(120)},
	{Type: entity.DeviceSmartphone, Brand: "Apple", Model: "iPhone 11", Description: "Fully working", Condition: entity.ConditionExcellent, Specs: map[string]string{"storage": "64GB"}, Value: decimal.NewFromInt(260)},
	{Type: entity.DeviceTablet, Brand: "Lenovo", Model: "Tab M10", Description: "Charging port worn", Condition: entity.ConditionPoor, Specs: map[string]string{"storage": "32GB"}, Value: decimal.NewFromInt(40)},
}

// Seed fills empty collections with demo data and creates the configured admin.
// Collections that already hold data are left alone, so running it twice is harmless.
func (srv *seedService) Seed(ctx context.Context) (*usecase.SeedReport, error) {
	report := &usecase.SeedReport{}

	if err := srv.seedAdmin(ctx, report); err != nil {
		return nil, err
	}
	if err := srv.seedVouchers(ctx, report); err != nil {
		return nil, err
	}
	if err := srv.seedProducts(ctx, report); err != nil {
		return nil, err
	}
	if err := srv.seedDevices(ctx, report); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Seed finished",
		slog.Int("users", report.Users),
		slog.Int("vouchers", report.Vouchers),
		slog.Int("products", report.Products),
		slog.Int("devices", report.Devices),
	)

	return report, nil
}

func (srv *seedService) seedAdmin(ctx context.Context, report *usecase.SeedReport) error {
	if srv.cfg == nil || srv.cfg.AdminEmail == "" || srv.cfg.AdminPassword == "" {
		return nil
	}

	_, err := srv.userRepo.FindByEmail(ctx, srv.cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up admin")
	}

	hash, err := srv.hasher.Hash(srv.cfg.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}
	admin := &entity.User{
		Email:        srv.cfg.AdminEmail,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Profile:      entity.Profile{FirstName: "Admin"},
		CreatedAt:    srv.now(),
	}
	if err := srv.userRepo.Create(ctx, admin); err != nil {
		return mapRepoError(err, "failed to create admin")
	}
	report.Users++

	return nil
}

func (srv *seedService) seedVouchers(ctx context.Context, report *usecase.SeedReport) error {
	existing, err := srv.voucherRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list vouchers")
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range seedVouchers {
		voucher := seedVouchers[i]
		if err := srv.voucherRepo.Add(ctx, &voucher); err != nil {
			return errors.Wrap(err, "failed to seed voucher")
		}
		report.Vouchers++
	}

	return nil
}

func (srv *seedService) seedProducts(ctx context.Context, report *usecase.SeedReport) error {
	existing, err := srv.productRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list products")
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range seedProducts {
		product := seedProducts[i]
		product.ID = uuid.New()
		if err := srv.productRepo.Create(ctx, &product); err != nil {
			return errors.Wrap(err, "failed to seed product")
		}
		report.Products++
	}

	return nil
}

func (srv *seedService) seedDevices(ctx context.Context, report *usecase.SeedReport) error {
	existing, err := srv.inventoryRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list inventory")
	}
	if len(existing) > 0 {
		return nil
	}

	received := srv.now()
	for i := range seedDevices {
		device := seedDevices[i]
		device.ID = uuid.New()
		device.Specs = make(map[string]string, len(seedDevices[i].Specs))
		for name, value := range seedDevices[i].Specs {
			device.Specs[name] = value
		}
		// Stagger received dates so the newest/oldest sorts are meaningful.
		device.ReceivedDate = received.Add(-time.Duration(len(seedDevices)-i) * 24 * time.Hour)
		device.OwnerEmail = srv.adminEmail()
		device.Status = entity.DeviceAvailable
		if err := srv.inventoryRepo.Create(ctx, &device); err != nil {
			return errors.Wrap(err, "failed to seed device")
		}
		report.Devices++
	}

	return nil
}

func (srv *seedService) adminEmail() string {
	if srv.cfg == nil {
		return ""
	}

	return srv.cfg.AdminEmail
}
