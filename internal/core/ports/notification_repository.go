package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// notification outbox.
type NotificationRepository interface {
	// Add persists a new outbox entry.
	Add(ctx context.Context, n *notification.Notification) error

	// ListUndispatched retrieves entries not yet pushed, oldest first.
	ListUndispatched(ctx context.Context, limit int) ([]*notification.Notification, error)

	// Update persists dispatch state changes to an existing entry.
	Update(ctx context.Context, n *notification.Notification) error
}
