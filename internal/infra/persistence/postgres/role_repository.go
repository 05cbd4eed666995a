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
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	q *query.Query
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		q: query.Use(db),
	}
}

// FindByName retrieves a role by name.
func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	roleM, err := repo.q.RoleModel.WithContext(ctx).
		Where(repo.q.RoleModel.Name.Eq(name)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRoleMissing.WrapMessage(name)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find role")
	}

	return toRoleDomain(roleM), nil
}

// EnsureRole inserts the role when its name is free, then reads back the stored row.
func (repo *roleRepository) EnsureRole(ctx context.Context, role *entity.Role) (*entity.Role, error) {
	roleM := &model.RoleModel{
		ID:          uuid.New(),
		Name:        role.Name,
		Status:      string(role.Status),
		Description: role.Description,
	}

	err := repo.q.RoleModel.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(roleM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure role")
	}

	return repo.FindByName(ctx, role.Name)
}

func toRoleDomain(data *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:          data.ID,
		Name:        data.Name,
		Status:      entity.RoleStatus(data.Status),
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
