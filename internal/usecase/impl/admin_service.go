package impl

import (
	"context"

	"billing/internal/domain/entity"
	"billing/internal/domain/repository"
	"billing/internal/errors"
	"billing/internal/usecase"

	"go.uber.org/fx"
)

type adminService struct {
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	PaymentRepo repository.PaymentRepository
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:    params.UserRepo,
		paymentRepo: params.PaymentRepo,
	}
}

func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.UserView, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]*entity.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, user.View())
	}

	return views, nil
}

func (srv *adminService) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
