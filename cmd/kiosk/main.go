package main

import (
	"context"
	"log/slog"
	"os"

	"crave/config"
	"crave/internal/delivery"
	"crave/internal/delivery/http"
	"crave/internal/delivery/http/middleware"
	"crave/internal/delivery/http/router/handler"
	"crave/internal/domain/service"
	"crave/internal/infra/backend"
	logs "crave/internal/infra/log"
	"crave/internal/infra/payment"
	"crave/internal/infra/persistence/blob"
	"crave/internal/infra/qrcode"
	"crave/internal/state"
	"crave/internal/usecase"
	"crave/internal/usecase/impl"

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
		injectGateway(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			hydrateState,
			stopQueueOnShutdown,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		blob.NewSnapshotRepository,
		state.New,
	)
}

func injectGateway() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewClient,
			backend.NewAuthAPI,
			backend.NewMenuAPI,
			backend.NewOrderAPI,
			backend.NewCouponAPI,
			backend.NewAdminAPI,
			payment.NewStripeService,
			newSessionInspector,
			newQRCodeService,
		),
	)
}

// newSessionInspector exposes the gateway's cookie expiry as the session
// inspector the auth use case depends on.
func newSessionInspector(client *backend.Client) service.SessionInspector {
	return client
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
			impl.NewAuthService,
			impl.NewMenuService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewQueueService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewQueueHandler,
			handler.NewAdminHandler,
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

// hydrateState restores the persisted session and cart before serving.
func hydrateState(ctx context.Context, store *state.Store) error {
	return store.Hydrate(ctx)
}

// stopQueueOnShutdown stops the live-queue poller with the app. The
// poller starts lazily when a staff board is first opened.
func stopQueueOnShutdown(lc fx.Lifecycle, queue usecase.QueueUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			queue.Stop()
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
