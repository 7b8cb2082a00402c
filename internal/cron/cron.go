package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Reminder publishes deadline reminders for documents due within window.
type Reminder interface {
	RemindUpcomingDeadlines(ctx context.Context, window time.Duration) (int, error)
}

// StartReminderTask runs reminders once on startup and then every interval,
// each pass covering the next interval. It stops when ctx is cancelled.
func StartReminderTask(ctx context.Context, reminder Reminder, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		zap.L().Info("starting deadline reminder task", zap.Duration("interval", interval))

		runReminders(ctx, reminder, interval)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				zap.L().Info("deadline reminder task stopped")
				return
			case <-ticker.C:
				runReminders(ctx, reminder, interval)
			}
		}
	}()
	return done
}

func runReminders(ctx context.Context, reminder Reminder, window time.Duration) {
	n, err := reminder.RemindUpcomingDeadlines(ctx, window)
	if err != nil {
		zap.L().Error("deadline reminder run failed", zap.Error(err))
		return
	}
	zap.L().Debug("deadline reminder run completed", zap.Int("reminders", n))
}
