package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// DispatchNotificationsCommandHandler drains the notification outbox.
// Entries whose owner has a connected client are pushed and marked
// dispatched; the rest stay queued for the next pass. Push failures skip
// the entry instead of failing the batch.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	notifier   ports.Notifier
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox
// dispatch. Requires a NotificationUoWFactory and the push channel.
func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	notifier ports.Notifier,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle pushes one batch of queued entries.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	queued, err := notificationRepo.ListUndispatched(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	for _, note := range queued {
		delivered, notifyErr := h.notifier.Notify(ctx, note)
		if notifyErr != nil || !delivered {
			continue
		}

		note.MarkDispatched()
		if err = notificationRepo.Update(ctx, note); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
