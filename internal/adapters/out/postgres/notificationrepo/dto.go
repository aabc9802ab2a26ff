// Package notificationrepo provides data transfer objects and mapping
// functions for the notification outbox.
package notificationrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for outbox entries.
type NotificationDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	ParcelID     *uuid.UUID `gorm:"type:uuid"`
	Title        string     `gorm:"size:255;not null"`
	Message      string     `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"index;not null"`
	Dispatched   bool       `gorm:"index;not null"`
	DispatchedAt *time.Time
}

// TableName specifies the database table name for outbox entries.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	var parcelID *uuid.UUID
	if id := n.ParcelID(); id != nil {
		raw := id.Bytes()
		parcelID = &raw
	}

	return NotificationDTO{
		ID:           n.ID().Bytes(),
		UserID:       n.UserID().Bytes(),
		ParcelID:     parcelID,
		Title:        n.Title(),
		Message:      n.Message(),
		CreatedAt:    n.CreatedAt(),
		Dispatched:   n.Dispatched(),
		DispatchedAt: n.DispatchedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	var parcelID *kernel.UUID
	if dto.ParcelID != nil {
		linked, linkErr := kernel.UUIDFromBytes((*dto.ParcelID)[:])
		if linkErr != nil {
			return nil, linkErr
		}
		parcelID = &linked
	}

	return notification.RestoreNotification(notification.RestoreNotificationParams{
		ID:           id,
		UserID:       userID,
		ParcelID:     parcelID,
		Title:        dto.Title,
		Message:      dto.Message,
		CreatedAt:    dto.CreatedAt,
		Dispatched:   dto.Dispatched,
		DispatchedAt: dto.DispatchedAt,
	})
}
