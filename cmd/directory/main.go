package main

import (
	"context"
	"log/slog"
	"os"

	"directory/config"
	"directory/internal/delivery"
	"directory/internal/delivery/http"
	"directory/internal/delivery/http/middleware"
	"directory/internal/delivery/http/router/handler"
	"directory/internal/domain/service"
	"directory/internal/infra/auth"
	logs "directory/internal/infra/log"
	"directory/internal/infra/payment"
	"directory/internal/infra/persistence/postgres"
	"directory/internal/infra/pubsub"
	"directory/internal/infra/qrcode"
	"directory/internal/infra/upload"
	"directory/internal/usecase"
	"directory/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			stopBadgePollerOnShutdown,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewCityRepository,
			postgres.NewBusinessRepository,
			postgres.NewClaimRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			payment.NewCheckoutClient,
			upload.NewBlobStorage,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDirectoryService,
			impl.NewClaimService,
			impl.NewBadgePoller,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCityHandler,
			handler.NewBusinessHandler,
			handler.NewClaimHandler,
			handler.NewBadgeHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// stopBadgePollerOnShutdown cancels every per-user badge poller when the
// application stops.
func stopBadgePollerOnShutdown(lc fx.Lifecycle, badge usecase.BadgeUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			badge.StopAll()

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
