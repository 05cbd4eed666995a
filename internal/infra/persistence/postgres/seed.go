package postgres

import (
	"context"
	"log/slog"

	"billing/config"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"
	"billing/internal/errors"
)

// SeedDefaults inserts the reference roles and the default administrator. Running it
// again leaves existing rows untouched.
func SeedDefaults(
	ctx context.Context,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	seed *config.SeedConfig,
	logger *slog.Logger,
) error {
	return txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		roleRepo := repos.NewRoleRepository()

		roles := make(map[string]*entity.Role)
		for _, role := range entity.DefaultRoles() {
			stored, err := roleRepo.EnsureRole(ctx, role)
			if err != nil {
				return err
			}
			roles[stored.Name] = stored
		}
		logger.Info("Roles seeded", slog.Int("count", len(roles)))

		if seed == nil || seed.AdminEmail == "" || seed.AdminPassword == "" {
			logger.Warn("Skipping admin seed, seed.adminEmail or seed.adminPassword is empty")

			return nil
		}

		userRepo := repos.NewUserRepository()
		exists, err := userRepo.ExistsByEmail(ctx, seed.AdminEmail)
		if err != nil {
			return err
		}
		if exists {
			logger.Info("Admin user already present", slog.String("email", seed.AdminEmail))

			return nil
		}

		hash, err := hasher.Hash(seed.AdminPassword)
		if err != nil {
			return err
		}

		fullName := seed.AdminFullName
		if fullName == "" {
			fullName = "Administrator"
		}

		admin := &entity.User{
			Email:        seed.AdminEmail,
			FullName:     fullName,
			PasswordHash: hash,
			RoleID:       roles[entity.RoleNameAdmin].ID,
			Active:       true,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
				return nil
			}

			return err
		}

		logger.Info("Admin user seeded", slog.String("email", admin.Email), slog.String("userID", admin.ID.String()))

		return nil
	})
}
