package main

import (
	"context"
	"log/slog"

	"billing/config"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"
	"billing/internal/infra/auth"
	logs "billing/internal/infra/log"
	"billing/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config    *config.Config
	Logger    *slog.Logger
	DB        *gorm.DB
	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
		),
		fx.Invoke(runMigrate),
	).Run()
}

// runMigrate applies the schema and seed data once the database is reachable, then stops the app.
func runMigrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Schema migrated")

			if err := postgres.SeedDefaults(ctx, params.TxManager, params.Hasher, params.Config.Seed, params.Logger); err != nil {
				return err
			}
			params.Logger.Info("Seed data applied")

			return params.Shutdown()
		},
	})
}
