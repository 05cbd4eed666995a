package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds a GORM handle that renders SQL without a server and records every statement.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=127.0.0.1 user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	statements := &[]string{}
	capture := func(tx *gorm.DB) {
		*statements = append(*statements, tx.Statement.SQL.String())
	}

	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))

	return db, statements
}

func TestUserRepository_SwapRefreshTokenHashIsConditional(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewUserRepository(db)

	swapped, err := repo.SwapRefreshTokenHash(context.Background(), uuid.New(), "old-hash", "new-hash")
	require.NoError(t, err)
	assert.False(t, swapped, "dry run affects no rows")

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `UPDATE "users"`)
	assert.Contains(t, sql, `"refresh_token_hash"=`)
	assert.Contains(t, sql, `"users"."id" = $`)
	assert.Contains(t, sql, `AND "users"."refresh_token_hash" = $`)
}

func TestUserRepository_ReadsJoinRole(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewUserRepository(db)

	_, _ = repo.FindByEmail(context.Background(), "ada@example.com")

	require.NotEmpty(t, *statements)
	sql := (*statements)[0]
	assert.Contains(t, sql, `LEFT JOIN "roles" "Role"`)
	assert.Contains(t, sql, `"users"."email" = $1`)
}

func TestUserRepository_ExistsByEmailCounts(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewUserRepository(db)

	exists, err := repo.ExistsByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, "count(*)")
	assert.Contains(t, sql, `"users"."email" = $1`)
}

func TestUserRepository_FindByCustomerIDJoinsRole(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewUserRepository(db)

	_, _ = repo.FindByCustomerID(context.Background(), "cus_123")

	require.NotEmpty(t, *statements)
	sql := (*statements)[0]
	assert.Contains(t, sql, `LEFT JOIN "roles" "Role"`)
	assert.Contains(t, sql, `"users"."processor_customer_id" = $1`)
}

func TestPaymentRepository_CreateIfAbsentIgnoresDuplicates(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewPaymentRepository(db)

	created, err := repo.CreateIfAbsent(context.Background(), &entity.Payment{
		UserID:            uuid.New(),
		ExternalPaymentID: "pi_123",
		Status:            entity.PaymentStatusCompleted,
	})
	require.NoError(t, err)
	assert.False(t, created)

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], `ON CONFLICT ("external_payment_id") DO NOTHING`)
}

func TestPaymentRepository_UpdateStatusGuardsSourceState(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewPaymentRepository(db)

	now := time.Now()
	payment, matched, err := repo.UpdateStatus(
		context.Background(),
		"pi_123",
		entity.PaymentStatusCancelled,
		entity.PaymentStatusCancelled.AllowedFrom(),
		entity.PaymentUpdate{CancelledAt: &now},
	)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Nil(t, payment)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `UPDATE "payments"`)
	assert.Contains(t, sql, `"payments"."external_payment_id" = $`)
	assert.Contains(t, sql, `"payments"."status" IN ($`)
	assert.Contains(t, sql, "RETURNING *")
}

func TestPaymentRepository_FindLatestByStatusOrdersPaidFirst(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewPaymentRepository(db)

	_, _ = repo.FindLatestByStatus(context.Background(), uuid.New(), entity.PaymentStatusCompleted)

	require.NotEmpty(t, *statements)
	sql := (*statements)[0]
	assert.Contains(t, sql, `"payments"."user_id" = $1`)
	assert.Contains(t, sql, `"payments"."status" = $2`)
	assert.Contains(t, sql, `ORDER BY "payments"."paid_at" IS NULL`)
	assert.Contains(t, sql, `"payments"."paid_at" DESC`)
	assert.Contains(t, sql, `"payments"."created_at" DESC`)
	assert.Less(t, strings.Index(sql, `"payments"."paid_at" DESC`), strings.Index(sql, `"payments"."created_at" DESC`))
}

func TestPaymentRepository_ExistsByStatusCounts(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewPaymentRepository(db)

	exists, err := repo.ExistsByStatus(context.Background(), uuid.New(), entity.PaymentStatusCompleted)
	require.NoError(t, err)
	assert.False(t, exists)

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], "count(*)")
	assert.Contains(t, (*statements)[0], `"payments"."status" = $2`)
}

func TestWebhookEventRepository_MarkProcessedTargetsDelivery(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewWebhookEventRepository(db)

	require.NoError(t, repo.MarkProcessed(context.Background(), "stripe", "evt_1", ""))

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `UPDATE "webhook_events"`)
	assert.Contains(t, sql, `"webhook_events"."provider" = $`)
	assert.Contains(t, sql, `"webhook_events"."provider_event_id" = $`)
}

func TestPaymentRepository_UpdateStatusWithoutSourceStates(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewPaymentRepository(db)

	_, matched, err := repo.UpdateStatus(context.Background(), "pi_123", entity.PaymentStatusPending, nil, entity.PaymentUpdate{})
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Empty(t, *statements)
}
