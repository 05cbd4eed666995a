// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"
	"billing/internal/errors"
	"billing/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	hasher       service.PasswordHasher
	tokenHasher  service.TokenHasher
	tokenService service.TokenService
	gateway      service.PaymentGateway
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	Hasher       service.PasswordHasher
	TokenHasher  service.TokenHasher
	TokenService service.TokenService
	Gateway      service.PaymentGateway
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		roleRepo:     params.RoleRepo,
		hasher:       params.Hasher,
		tokenHasher:  params.TokenHasher,
		tokenService: params.TokenService,
		gateway:      params.Gateway,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the processor customer first, then the user and its first session in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	exists, err := srv.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	role, err := srv.roleRepo.FindByName(ctx, entity.RoleNameUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve default role")
	}
	if !role.IsActive() {
		return nil, domainerrors.ErrRoleMissing.WrapMessage("default role is inactive")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	customer, err := srv.gateway.CreateCustomer(ctx, input.Email, input.FullName)
	if err != nil {
		srv.log(ctx).Error("Failed to create payment customer, registration abandoned",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return nil, asGatewayFailure(err)
	}

	user := &entity.User{
		Email:               input.Email,
		FullName:            input.FullName,
		PasswordHash:        passwordHash,
		RoleID:              role.ID,
		RoleName:            role.Name,
		ProcessorCustomerID: &customer.ID,
		Active:              true,
	}

	var pair *entity.TokenPair
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		issued, err := srv.issueWith(ctx, userRepo, user)
		if err != nil {
			return err
		}
		pair = issued

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.String("email", input.Email),
			slog.String("customerID", customer.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Info("Registration completed", slog.String("userID", user.ID.String()))

	return newAuthOutput(pair, user), nil
}

// Authenticate fails with the same error for unknown emails, inactive accounts and wrong passwords.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.hasher.DummyCheck(input.Password)
		srv.log(ctx).Info("Sign-in rejected", slog.String("reason", "unknown email"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	passwordOK := srv.hasher.Check(input.Password, user.PasswordHash)
	if !passwordOK || !user.Active {
		srv.log(ctx).Info("Sign-in rejected",
			slog.String("userID", user.ID.String()),
			slog.Bool("active", user.Active),
		)

		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := srv.IssueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Sign-in succeeded", slog.String("userID", user.ID.String()))

	return newAuthOutput(pair, user), nil
}

// IssueTokens signs a pair and stores the refresh hash, replacing any previous session.
func (srv *authService) IssueTokens(ctx context.Context, user *entity.User) (*entity.TokenPair, error) {
	return srv.issueWith(ctx, srv.userRepo, user)
}

func (srv *authService) issueWith(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (*entity.TokenPair, error) {
	pair, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	hash := srv.tokenHasher.Hash(pair.RefreshToken)
	if err := userRepo.SetRefreshTokenHash(ctx, user.ID, &hash); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token hash")
	}
	user.RefreshTokenHash = &hash

	return pair, nil
}

// Rotate exchanges a refresh token for a new pair. The stored hash is swapped
// only if it still matches, so a token can be rotated at most once. Every
// rejection returns ErrRefreshTokenInvalid.
func (srv *authService) Rotate(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	payload, err := srv.tokenService.ValidateToken(refreshToken, entity.TokenTypeRefresh)
	if err != nil {
		srv.log(ctx).Info("Refresh rejected", slog.String("reason", err.Error()))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByIDFromPrimary(ctx, payload.Subject)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	if user.RefreshTokenHash == nil || !srv.tokenHasher.Equal(refreshToken, *user.RefreshTokenHash) || !user.Active {
		srv.log(ctx).Warn("Refresh token does not match the live session", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	pair, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newHash := srv.tokenHasher.Hash(pair.RefreshToken)
	swapped, err := srv.userRepo.SwapRefreshTokenHash(ctx, user.ID, *user.RefreshTokenHash, newHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}
	if !swapped {
		srv.log(ctx).Warn("Concurrent refresh lost the swap", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	user.RefreshTokenHash = &newHash

	return newAuthOutput(pair, user), nil
}

// ValidateAccess verifies an access token.
func (srv *authService) ValidateAccess(ctx context.Context, accessToken string) (*entity.TokenPayload, error) {
	payload, err := srv.tokenService.ValidateToken(accessToken, entity.TokenTypeAccess)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.String("reason", err.Error()))

		return nil, domainerrors.ErrUnauthorized
	}

	return payload, nil
}

func newAuthOutput(pair *entity.TokenPair, user *entity.User) *usecase.AuthOutput {
	return &usecase.AuthOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.View(),
	}
}

// asGatewayFailure keeps ErrGatewayFailure as the cause of any processor error.
func asGatewayFailure(err error) error {
	if errors.Is(err, domainerrors.ErrGatewayFailure) {
		return err
	}

	return domainerrors.ErrGatewayFailure.WrapMessage(err.Error())
}
