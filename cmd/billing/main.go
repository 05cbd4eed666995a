package main

import (
	"context"
	"log/slog"
	"os"

	"billing/config"
	"billing/internal/delivery"
	"billing/internal/delivery/api"
	"billing/internal/delivery/api/middleware"
	"billing/internal/delivery/api/router/handler"
	"billing/internal/infra/auth"
	"billing/internal/infra/gateway/stripe"
	logs "billing/internal/infra/log"
	"billing/internal/infra/persistence/postgres"
	"billing/internal/infra/pubsub"
	"billing/internal/infra/ratelimit"
	"billing/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewPaymentRepository,
			postgres.NewWebhookEventRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewTokenHasher,
			auth.NewJWTService,
			stripe.NewGateway,
			ratelimit.NewRateLimiter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewLedgerService,
			impl.NewPaymentService,
			impl.NewAdminService,
			impl.NewReconcilerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSubscriptionHandler,
			handler.NewWebhookHandler,
			handler.NewAdminHandler,
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
