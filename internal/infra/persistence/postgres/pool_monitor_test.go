package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, _, _, waited := poolWaitReport(prev, prev)
		assert.False(t, waited)
	})

	t.Run("short waits are debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond}

		level, msg, _, waited := poolWaitReport(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Equal(t, "Postgres pool wait observed", msg)
	})

	t.Run("long waits warn with average", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 14, WaitDuration: 1400 * time.Millisecond, MaxOpenConnections: 5}

		level, _, attrs, waited := poolWaitReport(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
		assert.Contains(t, attrs, slog.Duration("avgWait", 100*time.Millisecond))
		assert.Contains(t, attrs, slog.Int("maxOpenConns", 5))
	})
}
