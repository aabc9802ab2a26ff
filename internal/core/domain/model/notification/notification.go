// Package notification contains the outbox entry written alongside parcel
// and wallet changes. Entries are persisted in the same transaction as the
// change they describe and pushed to connected clients by a background
// dispatcher, so a crash between commit and push never loses a message.
package notification

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was
	// not created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")
)

// Notification is one undelivered message addressed to a user.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	parcelID  *kernel.UUID
	title     string
	message   string
	createdAt time.Time

	dispatched   bool
	dispatchedAt *time.Time

	isConstructed bool
}

// NewNotification creates an undispatched outbox entry for a user.
func NewNotification(userID kernel.UUID, parcelID *kernel.UUID, title, message string) (*Notification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if parcelID != nil {
		if err := parcelID.Validate(); err != nil {
			return nil, err
		}
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:            kernel.NewUUID(),
		userID:        userID,
		parcelID:      parcelID,
		title:         title,
		message:       message,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreNotificationParams carries the persisted state of an outbox entry.
type RestoreNotificationParams struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	ParcelID     *kernel.UUID
	Title        string
	Message      string
	CreatedAt    time.Time
	Dispatched   bool
	DispatchedAt *time.Time
}

// RestoreNotification reconstructs an outbox entry from persistence.
func RestoreNotification(params RestoreNotificationParams) (*Notification, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.UserID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            params.ID,
		userID:        params.UserID,
		parcelID:      params.ParcelID,
		title:         params.Title,
		message:       params.Message,
		createdAt:     params.CreatedAt,
		dispatched:    params.Dispatched,
		dispatchedAt:  params.DispatchedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// MarkDispatched records that the message reached the push channel.
// Marking twice is a no-op.
func (n *Notification) MarkDispatched() {
	if n.dispatched {
		return
	}
	now := time.Now().UTC()
	n.dispatched = true
	n.dispatchedAt = &now
}

// ID returns the entry's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the addressed user's identifier.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// ParcelID returns the related parcel's identifier, nil if none.
func (n *Notification) ParcelID() *kernel.UUID {
	return n.parcelID
}

// Title returns the short headline shown to the user.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the notification body.
func (n *Notification) Message() string {
	return n.message
}

// CreatedAt returns when the entry was written.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// Dispatched reports whether the entry already reached the push channel.
func (n *Notification) Dispatched() bool {
	return n.dispatched
}

// DispatchedAt returns when the entry was pushed, nil until dispatched.
func (n *Notification) DispatchedAt() *time.Time {
	return n.dispatchedAt
}
