package main

import (
	"context"
	"log/slog"
	"os"

	"boral/config"
	"boral/internal/delivery"
	"boral/internal/delivery/api"
	apimiddleware "boral/internal/delivery/api/middleware"
	"boral/internal/delivery/api/router/handler"
	"boral/internal/delivery/middleware"
	"boral/internal/domain/service"
	"boral/internal/infra/auth"
	logs "boral/internal/infra/log"
	"boral/internal/infra/metrics"
	"boral/internal/infra/notification"
	"boral/internal/infra/persistence/mongodb"
	"boral/internal/infra/qrcode"
	"boral/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.PushRecorder)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewUserRepository,
			mongodb.NewStoreRepository,
			mongodb.NewProductRepository,
			mongodb.NewServiceRepository,
			mongodb.NewMessageRepository,
			mongodb.NewReviewRepository,
			mongodb.NewOrderRepository,
			mongodb.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.New,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStoreService,
			impl.NewProductService,
			impl.NewCatalogService,
			impl.NewReviewService,
			impl.NewOrderService,
			impl.NewMessageService,
			impl.NewSearchService,
			impl.NewAnalyticsService,
			impl.NewUploadService,
			impl.NewDeviceService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewStoreHandler,
			handler.NewProductHandler,
			handler.NewServiceHandler,
			handler.NewMessageHandler,
			handler.NewReviewHandler,
			handler.NewOrderHandler,
			handler.NewSearchHandler,
			handler.NewAnalyticsHandler,
			handler.NewUploadHandler,
			handler.NewDeviceHandler,
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
