package impl

import (
	"context"
	"testing"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"
	mockRepo "billing/internal/mocks/repository"
	mockSvc "billing/internal/mocks/service"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	roleRepo     *mockRepo.MockRoleRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenHasher  *mockSvc.MockTokenHasher
	tokenService *mockSvc.MockTokenService
	gateway      *mockSvc.MockPaymentGateway
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		roleRepo:     mockRepo.NewMockRoleRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenHasher:  mockSvc.NewMockTokenHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		gateway:      mockSvc.NewMockPaymentGateway(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		RoleRepo:     fx.roleRepo,
		Hasher:       fx.hasher,
		TokenHasher:  fx.tokenHasher,
		TokenService: fx.tokenService,
		Gateway:      fx.gateway,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func activeUserRole() *entity.Role {
	return &entity.Role{ID: uuid.New(), Name: entity.RoleNameUser, Status: entity.RoleStatusActive}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "ada@example.com",
		Password: "correct horse battery",
		FullName: "Ada Lovelace",
	}
	role := activeUserRole()
	pair := &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	fx.roleRepo.EXPECT().FindByName(ctx, entity.RoleNameUser).Return(role, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.gateway.EXPECT().
		CreateCustomer(ctx, input.Email, input.FullName).
		Return(&service.CustomerRef{ID: "cus_123"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "hashed_password", user.PasswordHash)
					assert.Equal(t, role.ID, user.RoleID)
					require.NotNil(t, user.ProcessorCustomerID)
					assert.Equal(t, "cus_123", *user.ProcessorCustomerID)
					user.ID = uuid.New()
				}).
				Return(nil)

			fx.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("*entity.User")).Return(pair, nil)
			fx.tokenHasher.EXPECT().Hash(pair.RefreshToken).Return("refresh_hash")
			txUserRepo.EXPECT().
				SetRefreshTokenHash(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("*string")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.FullName, output.User.FullName)
	assert.Equal(t, entity.RoleNameUser, output.User.Role)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "ada@example.com", Password: "correct horse battery", FullName: "Ada"}

	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_GatewayFailureWritesNothing(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "ada@example.com", Password: "correct horse battery", FullName: "Ada"}

	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	fx.roleRepo.EXPECT().FindByName(ctx, entity.RoleNameUser).Return(activeUserRole(), nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.gateway.EXPECT().
		CreateCustomer(ctx, input.Email, input.FullName).
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrGatewayFailure)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Register_RoleMissing(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "ada@example.com", Password: "correct horse battery", FullName: "Ada"}

	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	fx.roleRepo.EXPECT().
		FindByName(ctx, entity.RoleNameUser).
		Return(nil, domainerrors.ErrRoleMissing.WrapMessage(entity.RoleNameUser))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRoleMissing)
	fx.gateway.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Register_InactiveRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "ada@example.com", Password: "correct horse battery", FullName: "Ada"}
	role := activeUserRole()
	role.Status = entity.RoleStatusInactive

	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	fx.roleRepo.EXPECT().FindByName(ctx, entity.RoleNameUser).Return(role, nil)

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrRoleMissing)
}

func TestAuthService_Register_TransactionFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "ada@example.com", Password: "correct horse battery", FullName: "Ada"}

	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	fx.roleRepo.EXPECT().FindByName(ctx, entity.RoleNameUser).Return(activeUserRole(), nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.gateway.EXPECT().CreateCustomer(ctx, input.Email, input.FullName).Return(&service.CustomerRef{ID: "cus_1"}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Contains(t, err.Error(), "failed to execute user registration transaction")
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: "hashed_password",
		RoleName:     entity.RoleNameUser,
		Active:       true,
	}
	pair := &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret-password", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user).Return(pair, nil)
	fx.tokenHasher.EXPECT().Hash("refresh").Return("refresh_hash")
	fx.userRepo.EXPECT().
		SetRefreshTokenHash(ctx, user.ID, mock.MatchedBy(func(hash *string) bool {
			return hash != nil && *hash == "refresh_hash"
		})).
		Return(nil)

	output, err := fx.service.Authenticate(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Authenticate_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, domainerrors.ErrUserNotFound)
	unknown.hasher.EXPECT().DummyCheck("secret-password").Return()

	_, unknownErr := unknown.service.Authenticate(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret-password"})

	wrong := createTestAuthService(t)
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed_password", Active: true}
	wrong.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	wrong.hasher.EXPECT().Check("secret-password", user.PasswordHash).Return(false)

	_, wrongErr := wrong.service.Authenticate(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret-password"})

	assert.Equal(t, domainerrors.ErrInvalidCredentials, unknownErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Authenticate_InactiveUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed_password", Active: false}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret-password", user.PasswordHash).Return(true)

	_, err := fx.service.Authenticate(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret-password"})

	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func TestAuthService_Rotate_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oldHash := "old_hash"
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", RefreshTokenHash: &oldHash, Active: true}
	pair := &entity.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-1", entity.TokenTypeRefresh).
		Return(&entity.TokenPayload{Subject: user.ID, Type: entity.TokenTypeRefresh}, nil)
	fx.userRepo.EXPECT().FindByIDFromPrimary(ctx, user.ID).Return(user, nil)
	fx.tokenHasher.EXPECT().Equal("refresh-1", oldHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user).Return(pair, nil)
	fx.tokenHasher.EXPECT().Hash("refresh-2").Return("new_hash")
	fx.userRepo.EXPECT().SwapRefreshTokenHash(ctx, user.ID, oldHash, "new_hash").Return(true, nil)

	output, err := fx.service.Rotate(ctx, "refresh-1")

	require.NoError(t, err)
	assert.Equal(t, "access-2", output.AccessToken)
	assert.Equal(t, "refresh-2", output.RefreshToken)
}

func TestAuthService_Rotate_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateToken("garbage", entity.TokenTypeRefresh).
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.Rotate(context.Background(), "garbage")

	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestAuthService_Rotate_StaleToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	currentHash := "current_hash"
	user := &entity.User{ID: uuid.New(), RefreshTokenHash: &currentHash, Active: true}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-old", entity.TokenTypeRefresh).
		Return(&entity.TokenPayload{Subject: user.ID}, nil)
	fx.userRepo.EXPECT().FindByIDFromPrimary(ctx, user.ID).Return(user, nil)
	fx.tokenHasher.EXPECT().Equal("refresh-old", currentHash).Return(false)

	_, err := fx.service.Rotate(ctx, "refresh-old")

	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestAuthService_Rotate_SignedOut(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Active: true}

	fx.tokenService.EXPECT().
		ValidateToken("refresh", entity.TokenTypeRefresh).
		Return(&entity.TokenPayload{Subject: user.ID}, nil)
	fx.userRepo.EXPECT().FindByIDFromPrimary(ctx, user.ID).Return(user, nil)

	_, err := fx.service.Rotate(ctx, "refresh")

	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestAuthService_Rotate_LostSwap(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oldHash := "old_hash"
	user := &entity.User{ID: uuid.New(), RefreshTokenHash: &oldHash, Active: true}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-1", entity.TokenTypeRefresh).
		Return(&entity.TokenPayload{Subject: user.ID}, nil)
	fx.userRepo.EXPECT().FindByIDFromPrimary(ctx, user.ID).Return(user, nil)
	fx.tokenHasher.EXPECT().Equal("refresh-1", oldHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user).Return(&entity.TokenPair{RefreshToken: "refresh-2"}, nil)
	fx.tokenHasher.EXPECT().Hash("refresh-2").Return("new_hash")
	fx.userRepo.EXPECT().SwapRefreshTokenHash(ctx, user.ID, oldHash, "new_hash").Return(false, nil)

	_, err := fx.service.Rotate(ctx, "refresh-1")

	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestAuthService_Rotate_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("refresh", entity.TokenTypeRefresh).
		Return(&entity.TokenPayload{Subject: userID}, nil)
	fx.userRepo.EXPECT().FindByIDFromPrimary(ctx, userID).Return(nil, domainerrors.ErrUserNotFound)

	_, err := fx.service.Rotate(ctx, "refresh")

	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestAuthService_ValidateAccess(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	payload := &entity.TokenPayload{Subject: uuid.New(), Type: entity.TokenTypeAccess}

	fx.tokenService.EXPECT().ValidateToken("good", entity.TokenTypeAccess).Return(payload, nil)
	fx.tokenService.EXPECT().ValidateToken("bad", entity.TokenTypeAccess).Return(nil, errors.New("token is expired"))

	got, err := fx.service.ValidateAccess(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	_, err = fx.service.ValidateAccess(ctx, "bad")
	assert.Equal(t, domainerrors.ErrUnauthorized, err)
}
