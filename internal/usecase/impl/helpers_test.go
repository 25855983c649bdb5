package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"recyclemart/config"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/infra/persistence/kv"
	"recyclemart/internal/infra/persistence/local"
	mockSvc "recyclemart/internal/mocks/service"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Quotes:    &config.QuotesConfig{MaxImages: 3, PointsPerCurrencyUnit: 1.5, RecentLimit: 2},
		Inventory: &config.InventoryConfig{PageSize: 2},
		Dashboard: &config.DashboardConfig{ActiveWindow: 7 * 24 * time.Hour},
		Depot:     &config.DepotConfig{Latitude: 51.5074, Longitude: -0.1278},
		Seed:      &config.SeedConfig{AdminEmail: "root@recyclemart.io", AdminPassword: "Sup3rSecret"},
	}
}

// storeFixture wires every service over one in-memory store and the local repositories.
type storeFixture struct {
	store         *kv.Memory
	cfg           *config.Config
	userRepo      repository.UserRepository
	sessionRepo   repository.SessionRepository
	requestRepo   repository.RecycleRequestRepository
	notifyRepo    repository.NotificationRepository
	inventoryRepo repository.InventoryRepository
	voucherRepo   repository.VoucherRepository
	cartRepo      repository.CartRepository
	orderRepo     repository.OrderRepository
	productRepo   repository.MarketProductRepository
	txManager     repository.TransactionManager
	gate          usecase.SessionUsecase
	hasher        *mockSvc.MockPasswordHasher
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()

	store := kv.NewMemory(0)
	logger := newDiscardLogger()
	hasher := mockSvc.NewMockPasswordHasher(t)
	fx := &storeFixture{
		store:         store,
		cfg:           newTestConfig(),
		userRepo:      local.NewUserRepository(store, logger),
		sessionRepo:   local.NewSessionRepository(store),
		requestRepo:   local.NewRecycleRequestRepository(store, logger),
		notifyRepo:    local.NewNotificationRepository(store, logger),
		inventoryRepo: local.NewInventoryRepository(store, logger),
		voucherRepo:   local.NewVoucherRepository(store, logger),
		cartRepo:      local.NewCartRepository(store, logger),
		orderRepo:     local.NewOrderRepository(store, logger),
		productRepo:   local.NewMarketProductRepository(store, logger),
		txManager:     local.NewTransactionManager(store, logger),
		hasher:        hasher,
	}
	fx.gate = NewSessionService(SessionServiceParams{
		UserRepo:    fx.userRepo,
		SessionRepo: fx.sessionRepo,
		Hasher:      hasher,
		Logger:      logger,
	})

	return fx
}

// loginAs creates the account when missing and writes the session flags for it.
func (fx *storeFixture) loginAs(t *testing.T, email string, role entity.Role) {
	t.Helper()

	ctx := context.Background()
	if _, err := fx.userRepo.FindByEmail(ctx, email); err != nil {
		require.NoError(t, fx.userRepo.Create(ctx, &entity.User{
			Email:        email,
			PasswordHash: "hash",
			Role:         role,
			CreatedAt:    testNow,
		}))
	}
	require.NoError(t, fx.sessionRepo.Save(ctx, &repository.SessionFlags{LoggedIn: true, Email: email, Role: role}))
}

func (fx *storeFixture) userService() *userService {
	srv := NewUserService(UserServiceParams{
		Gate:             fx.gate,
		UserRepo:         fx.userRepo,
		NotificationRepo: fx.notifyRepo,
		TxManager:        fx.txManager,
		Hasher:           fx.hasher,
		Logger:           newDiscardLogger(),
	}).(*userService)
	srv.now = fixedClock

	return srv
}

func (fx *storeFixture) quoteService() *quoteService {
	srv := NewQuoteService(QuoteServiceParams{
		Gate:        fx.gate,
		RequestRepo: fx.requestRepo,
		TxManager:   fx.txManager,
		Config:      fx.cfg,
		Logger:      newDiscardLogger(),
	}).(*quoteService)
	srv.now = fixedClock

	return srv
}

func (fx *storeFixture) inventoryService() *inventoryService {
	srv := NewInventoryService(InventoryServiceParams{
		Gate:          fx.gate,
		InventoryRepo: fx.inventoryRepo,
		Config:        fx.cfg,
		Logger:        newDiscardLogger(),
	}).(*inventoryService)
	srv.now = fixedClock

	return srv
}

func (fx *storeFixture) voucherService() *voucherService {
	return NewVoucherService(VoucherServiceParams{
		Gate:        fx.gate,
		VoucherRepo: fx.voucherRepo,
		TxManager:   fx.txManager,
		Logger:      newDiscardLogger(),
	}).(*voucherService)
}

func (fx *storeFixture) marketService() *marketService {
	return NewMarketService(MarketServiceParams{
		Gate:        fx.gate,
		ProductRepo: fx.productRepo,
		Logger:      newDiscardLogger(),
	}).(*marketService)
}

func (fx *storeFixture) orderService(publisher *mockSvc.MockEventPublisher, qr *mockSvc.MockQRCodeService) *orderService {
	srv := NewOrderService(OrderServiceParams{
		Gate:          fx.gate,
		InventoryRepo: fx.inventoryRepo,
		CartRepo:      fx.cartRepo,
		OrderRepo:     fx.orderRepo,
		TxManager:     fx.txManager,
		Publisher:     publisher,
		QRCodeService: qr,
		Config:        fx.cfg,
		Logger:        newDiscardLogger(),
	}).(*orderService)
	srv.now = fixedClock

	return srv
}

func (fx *storeFixture) addDevice(t *testing.T, deviceType entity.DeviceType, brand, value string, condition entity.Condition, received time.Time) *entity.InventoryDevice {
	t.Helper()

	device := &entity.InventoryDevice{
		ID:           uuid.New(),
		Type:         deviceType,
		Brand:        brand,
		Model:        "Model " + value,
		Description:  brand + " device",
		Condition:    condition,
		Specs:        map[string]string{"storage": "128GB"},
		ReceivedDate: received,
		Value:        decimal.RequireFromString(value),
		OwnerEmail:   "donor@recyclemart.io",
		Status:       entity.DeviceAvailable,
	}
	require.NoError(t, fx.inventoryRepo.Create(context.Background(), device))

	return device
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}
