package postgres

import (
	"context"
	"time"

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

type paymentRepository struct {
	q *query.Query
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		q: query.Use(db),
	}
}

// CreateIfAbsent inserts with ON CONFLICT (external_payment_id) DO NOTHING.
func (repo *paymentRepository) CreateIfAbsent(ctx context.Context, payment *entity.Payment) (bool, error) {
	paymentM := fromPaymentDomain(payment)
	if paymentM.ID == uuid.Nil {
		paymentM.ID = uuid.New()
	}

	// DO NOTHING reports the skipped insert only through RowsAffected, which gen's Create drops.
	result := repo.q.PaymentModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_payment_id"}},
			DoNothing: true,
		}).
		UnderlyingDB().
		Create(paymentM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, domainerrors.ErrActivePaymentExists.WrapMessage("completed payment already recorded for user")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrUserNotFound.WrapMessage("payment references unknown user")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create payment")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return true, nil
}

// FindByExternalID retrieves a payment by the processor's transaction id.
func (repo *paymentRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Payment, error) {
	paymentM, err := repo.q.PaymentModel.WithContext(ctx).
		Where(repo.q.PaymentModel.ExternalPaymentID.Eq(externalID)).
		First()

	return toPaymentResult(paymentM, err, "failed to find payment by external id")
}

// FindLatestByStatus returns the newest payment of the user in the status, ordered by paid_at with nulls last.
func (repo *paymentRepository) FindLatestByStatus(ctx context.Context, userID uuid.UUID, status entity.PaymentStatus) (*entity.Payment, error) {
	p := repo.q.PaymentModel
	paymentM, err := p.WithContext(ctx).
		Where(p.UserID.Eq(userID), p.Status.Eq(string(status))).
		Order(p.PaidAt.IsNull(), p.PaidAt.Desc(), p.CreatedAt.Desc()).
		Take()

	return toPaymentResult(paymentM, err, "failed to find latest payment")
}

// ExistsByStatus reports whether the user has a payment in the status.
func (repo *paymentRepository) ExistsByStatus(ctx context.Context, userID uuid.UUID, status entity.PaymentStatus) (bool, error) {
	count, err := repo.q.PaymentModel.WithContext(ctx).
		Where(
			repo.q.PaymentModel.UserID.Eq(userID),
			repo.q.PaymentModel.Status.Eq(string(status)),
		).
		Count()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check payment status")
	}

	return count > 0, nil
}

// UpdateStatus runs UPDATE ... WHERE external_payment_id = ? AND status IN (from).
func (repo *paymentRepository) UpdateStatus(
	ctx context.Context,
	externalID string,
	status entity.PaymentStatus,
	from []entity.PaymentStatus,
	update entity.PaymentUpdate,
) (*entity.Payment, bool, error) {
	if len(from) == 0 {
		return nil, false, nil
	}

	allowed := make([]string, 0, len(from))
	for _, s := range from {
		allowed = append(allowed, string(s))
	}

	values := map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if update.PaidAt != nil {
		values["paid_at"] = *update.PaidAt
	}
	if update.CancelledAt != nil {
		values["cancelled_at"] = *update.CancelledAt
	}

	// RETURNING rows land in the Model destination, so the update runs on the underlying handle.
	var updated []model.PaymentModel
	result := repo.q.PaymentModel.WithContext(ctx).
		Where(
			repo.q.PaymentModel.ExternalPaymentID.Eq(externalID),
			repo.q.PaymentModel.Status.In(allowed...),
		).
		UnderlyingDB().
		Model(&updated).
		Clauses(clause.Returning{}).
		Updates(values)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, false, domainerrors.ErrActivePaymentExists.WrapMessage("completed payment already recorded for user")
		}

		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, false, nil
	}

	payment := toPaymentDomain(&updated[0])
	if len(update.Metadata) > 0 {
		if err := repo.mergeMetadata(ctx, payment, update.Metadata); err != nil {
			return nil, false, err
		}
	}

	return payment, true, nil
}

// List returns every payment, newest first.
func (repo *paymentRepository) List(ctx context.Context) ([]*entity.Payment, error) {
	rows, err := repo.q.PaymentModel.WithContext(ctx).
		Order(repo.q.PaymentModel.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, toPaymentDomain(row))
	}

	return payments, nil
}

func (repo *paymentRepository) mergeMetadata(ctx context.Context, payment *entity.Payment, extra map[string]string) error {
	merged := make(map[string]string, len(payment.Metadata)+len(extra))
	for k, v := range payment.Metadata {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}

	// Metadata goes through the json serializer, which needs a struct update.
	err := repo.q.PaymentModel.WithContext(ctx).
		UnderlyingDB().
		Model(&model.PaymentModel{ID: payment.ID}).
		Select("Metadata").
		Updates(&model.PaymentModel{Metadata: merged}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update payment metadata")
	}

	payment.Metadata = merged

	return nil
}

func toPaymentResult(paymentM *model.PaymentModel, err error, details string) (*entity.Payment, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toPaymentDomain(paymentM), nil
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:                data.ID,
		UserID:            data.UserID,
		PlanID:            data.PlanID,
		PriceID:           data.PriceID,
		ExternalPaymentID: data.ExternalPaymentID,
		Status:            entity.PaymentStatus(data.Status),
		Amount:            data.Amount,
		Currency:          data.Currency,
		PaidAt:            data.PaidAt,
		CancelledAt:       data.CancelledAt,
		Metadata:          data.Metadata,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		ID:                data.ID,
		UserID:            data.UserID,
		PlanID:            data.PlanID,
		PriceID:           data.PriceID,
		ExternalPaymentID: data.ExternalPaymentID,
		Status:            string(data.Status),
		Amount:            data.Amount,
		Currency:          data.Currency,
		PaidAt:            data.PaidAt,
		CancelledAt:       data.CancelledAt,
		Metadata:          data.Metadata,
	}
}
