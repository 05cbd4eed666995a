// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/infra/persistence/model"
	"billing/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It initializes the repository with the GORM Gen query builder.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID. Reads join roles so RoleName is always filled.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Joins(repo.q.UserModel.Role).
		Where(repo.q.UserModel.ID.Eq(id)).
		First()

	return toUserResult(userM, err, "failed to find user by id")
}

// FindByIDFromPrimary retrieves a user from the primary database.
func (repo *userRepository) FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Joins(repo.q.UserModel.Role).
		WriteDB().
		Where(repo.q.UserModel.ID.Eq(id)).
		First()

	return toUserResult(userM, err, "failed to find user by id from primary")
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Joins(repo.q.UserModel.Role).
		Where(repo.q.UserModel.Email.Eq(email)).
		First()

	return toUserResult(userM, err, "failed to find user by email")
}

// FindByCustomerID resolves a user by the payment processor customer id.
func (repo *userRepository) FindByCustomerID(ctx context.Context, customerID string) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Joins(repo.q.UserModel.Role).
		Where(repo.q.UserModel.ProcessorCustomerID.Eq(customerID)).
		First()

	return toUserResult(userM, err, "failed to find user by customer id")
}

// ExistsByEmail reports whether any user uses the email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Email.Eq(email)).
		Count()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user email")
	}

	return count > 0, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or customer already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRoleMissing.WrapMessage("invalid role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// SetRefreshTokenHash unconditionally overwrites the user's refresh hash.
func (repo *userRepository) SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash *string) error {
	result, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		Update(repo.q.UserModel.RefreshTokenHash, hash)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store refresh token hash")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// SwapRefreshTokenHash performs a compare-and-swap on the refresh hash column.
func (repo *userRepository) SwapRefreshTokenHash(ctx context.Context, id uuid.UUID, oldHash, newHash string) (bool, error) {
	result, err := repo.q.UserModel.WithContext(ctx).
		Where(
			repo.q.UserModel.ID.Eq(id),
			repo.q.UserModel.RefreshTokenHash.Eq(oldHash),
		).
		Update(repo.q.UserModel.RefreshTokenHash, newHash)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to rotate refresh token hash")
	}

	return result.RowsAffected == 1, nil
}

// List returns all users with their role, newest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := repo.q.UserModel.WithContext(ctx).
		Joins(repo.q.UserModel.Role).
		Order(repo.q.UserModel.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users, nil
}

func toUserResult(userM *model.UserModel, err error, details string) (*entity.User, error) {
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toUserDomain(userM), nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                  data.ID,
		Email:               data.Email,
		FullName:            data.FullName,
		PasswordHash:        data.PasswordHash,
		RoleID:              data.RoleID,
		ProcessorCustomerID: data.ProcessorCustomerID,
		RefreshTokenHash:    data.RefreshTokenHash,
		Active:              data.Active,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
	if data.Role != nil {
		user.RoleName = data.Role.Name
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                  data.ID,
		Email:               data.Email,
		FullName:            data.FullName,
		PasswordHash:        data.PasswordHash,
		RoleID:              data.RoleID,
		ProcessorCustomerID: data.ProcessorCustomerID,
		RefreshTokenHash:    data.RefreshTokenHash,
		Active:              data.Active,
	}
}
