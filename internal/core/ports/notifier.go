package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/notification"
)

// Notifier pushes a notification to the addressed user's live channel.
// Implementations are best-effort: a user without an open connection is
// not an error, the outbox entry simply stays queued for the next pass.
type Notifier interface {
	// Notify delivers the message to the user's connected clients.
	// Returns whether at least one client received it.
	Notify(ctx context.Context, n *notification.Notification) (bool, error)
}
