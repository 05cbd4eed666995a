package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

// monitorDBPool samples pool stats every interval and reports callers that had to wait for
// a connection. Webhook bursts show up here first.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, msg, attrs, waited := poolWaitReport(prev, cur); waited {
				logger.LogAttrs(ctx, level, msg, attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitReport compares two samples. waited is false when nobody waited in between.
func poolWaitReport(prev, cur sql.DBStats) (level slog.Level, msg string, attrs []slog.Attr, waited bool) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return 0, "", nil, false
	}

	waitDurationDelta := cur.WaitDuration - prev.WaitDuration
	attrs = []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		return slog.LevelWarn, "Postgres pool wait detected", attrs, true
	}

	return slog.LevelDebug, "Postgres pool wait observed", attrs, true
}
