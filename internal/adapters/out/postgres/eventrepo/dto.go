// Package eventrepo provides data transfer objects and mapping functions
// for the parcel audit trail. The trail is append-only at the repository
// level: there is no update or delete path.
package eventrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelEventDTO represents the database structure for audit events.
type ParcelEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole  string    `gorm:"size:32;not null"`
	Status     string    `gorm:"size:32;not null"`
	Location   string    `gorm:"not null;default:''"`
	Notes      string    `gorm:"not null;default:''"`
	Photo      string    `gorm:"not null;default:''"`
	OccurredAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for audit events.
func (ParcelEventDTO) TableName() string {
	return "parcel_events"
}

func fromDomain(event *parcel.Event) ParcelEventDTO {
	return ParcelEventDTO{
		ID:         event.ID().Bytes(),
		ParcelID:   event.ParcelID().Bytes(),
		ActorID:    event.ActorID().Bytes(),
		ActorRole:  event.ActorRole().String(),
		Status:     event.Status().String(),
		Location:   event.Location(),
		Notes:      event.Notes(),
		Photo:      event.Photo(),
		OccurredAt: event.OccurredAt(),
	}
}

func toDomain(dto ParcelEventDTO) (*parcel.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}
	actorRole, err := parcel.ActorRoleFromString(dto.ActorRole)
	if err != nil {
		return nil, err
	}
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreEvent(parcel.RestoreEventParams{
		ID:         id,
		ParcelID:   parcelID,
		ActorID:    actorID,
		ActorRole:  actorRole,
		Status:     status,
		Location:   dto.Location,
		Notes:      dto.Notes,
		Photo:      dto.Photo,
		OccurredAt: dto.OccurredAt,
	})
}
