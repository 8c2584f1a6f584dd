package cron

import (
	"context"
	"log/slog"
	"time"
)

const CleanupInterval = 24 * time.Hour

// Cleaner deletes audit entries older than the given number of days.
type Cleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

// StartCleanupTask runs cleanup once now and then every interval until ctx
// is cancelled. The returned channel is closed when the loop has exited.
func StartCleanupTask(ctx context.Context, cleaner Cleaner, days int, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		slog.Info("starting audit log cleanup task", "retention_days", days, "interval", interval)

		runCleanup(cleaner, days)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("audit log cleanup task stopped")
				return
			case <-ticker.C:
				runCleanup(cleaner, days)
			}
		}
	}()
	return done
}

func runCleanup(cleaner Cleaner, days int) {
	n, err := cleaner.CleanupOldLogs(days)
	if err != nil {
		slog.Error("failed to clean up old audit logs", "error", err)
		return
	}
	slog.Info("audit log cleanup completed", "deleted", n)
}
