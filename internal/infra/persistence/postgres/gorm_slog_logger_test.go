package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"billing/config"
	"billing/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newCapturingGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	quiet, _ := newCapturingGormLogger(false)
	sql, params := quiet.ParamsFilter(context.Background(), "UPDATE users SET refresh_token_hash = ?", "secret-hash")
	assert.Equal(t, "UPDATE users SET refresh_token_hash = ?", sql)
	assert.Nil(t, params)

	debug, _ := newCapturingGormLogger(true)
	_, params = debug.ParamsFilter(context.Background(), "SELECT 1", 42)
	assert.Equal(t, []any{42}, params)
}

func TestGormSlogLogger_GormAppliesParamsFilter(t *testing.T) {
	run := func(showParams bool) string {
		l, buf := newCapturingGormLogger(true)
		l.showParams = showParams

		db, err := gorm.Open(pgdriver.New(pgdriver.Config{
			DSN: "host=127.0.0.1 user=test dbname=test sslmode=disable",
		}), &gorm.Config{
			DryRun:                 true,
			DisableAutomaticPing:   true,
			SkipDefaultTransaction: true,
			Logger:                 l,
		})
		require.NoError(t, err)

		var filter gorm.ParamsFilter = l
		assert.NotNil(t, filter)

		var userM model.UserModel
		db.Where("refresh_token_hash = ?", "secret-hash").First(&userM)

		return buf.String()
	}

	hidden := run(false)
	assert.Contains(t, hidden, "refresh_token_hash = $1")
	assert.NotContains(t, hidden, "secret-hash")

	assert.Contains(t, run(true), "secret-hash")
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT * FROM payments", 1 }

	t.Run("failed query logged", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "connection reset")
	})

	t.Run("record not found ignored", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query warned", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		l, buf = newCapturingGormLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "SELECT * FROM payments")
	})
}
