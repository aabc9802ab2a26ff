package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob manages the scheduled draining of the notification
// outbox. Runs every second so committed entries reach connected clients
// near real-time.
type NotificationDispatchJob struct {
	handler   commands.DispatchNotificationsCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationDispatchJob creates a new job for outbox dispatch.
// Uses DispatchNotificationsCommandHandler to push queued notifications.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	batchSize int,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewDispatchNotificationsCommand(j.batchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Invalid dispatch batch size", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
