package main

import (
	"context"
	"log/slog"
	"os"

	"recyclemart/config"
	"recyclemart/internal/delivery"
	"recyclemart/internal/delivery/api"
	"recyclemart/internal/delivery/api/router"
	"recyclemart/internal/domain/service"
	"recyclemart/internal/infra/auth"
	logs "recyclemart/internal/infra/log"
	"recyclemart/internal/infra/persistence/local"
	"recyclemart/internal/infra/persistence/storage"
	"recyclemart/internal/infra/pubsub"
	"recyclemart/internal/infra/qrcode"
	"recyclemart/internal/usecase"
	"recyclemart/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Seeder usecase.SeedUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		router.Module,
		pubsub.Module,
		fx.Invoke(
			seedOnStartup,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			local.NewUserRepository,
			local.NewSessionRepository,
			local.NewRecycleRequestRepository,
			local.NewNotificationRepository,
			local.NewInventoryRepository,
			local.NewVoucherRepository,
			local.NewMarketProductRepository,
			local.NewCartRepository,
			local.NewOrderRepository,
			local.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewQuoteService,
			impl.NewInventoryService,
			impl.NewVoucherService,
			impl.NewMarketService,
			impl.NewOrderService,
			impl.NewDashboardService,
			impl.NewSeedService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedOnStartup loads demo data once the store is reachable.
func seedOnStartup(params seedParams) {
	if !params.Config.Seed.OnStartup {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			report, err := params.Seeder.Seed(ctx)
			if err != nil {
				return err
			}
			params.Logger.Info("Seeded store",
				slog.Int("users", report.Users),
				slog.Int("vouchers", report.Vouchers),
				slog.Int("products", report.Products),
				slog.Int("devices", report.Devices),
			)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
