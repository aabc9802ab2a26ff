// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. Implements the repository pattern for the parcel
// aggregate, handling conversion between domain entities and database rows.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking id and its QR digest carry unique indexes, and
// the version column backs the optimistic concurrency check on updates.
type ParcelDTO struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	TrackingID       string           `gorm:"size:64;uniqueIndex;not null"`
	QRHash           string           `gorm:"column:qr_hash;size:64;uniqueIndex;not null"`
	SenderID         uuid.UUID        `gorm:"type:uuid;index;not null"`
	RecipientName    string           `gorm:"size:255;not null"`
	RecipientPhone   string           `gorm:"size:32;not null"`
	PickupPartnerID  *uuid.UUID       `gorm:"type:uuid"`
	DropoffPartnerID *uuid.UUID       `gorm:"type:uuid"`
	DriverID         *uuid.UUID       `gorm:"type:uuid;index"`
	Status           string           `gorm:"size:32;index;not null"`
	Weight           decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	Distance         *decimal.Decimal `gorm:"type:numeric(10,2)"`
	Price            decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	PaymentMethod    string           `gorm:"size:32;not null"`
	IsPaid           bool             `gorm:"not null"`
	Description      string           `gorm:"not null;default:''"`
	Photos           []string         `gorm:"serializer:json;type:jsonb"`
	DeliveryProof    string           `gorm:"not null;default:''"`
	Rating           *int
	Review           string `gorm:"not null;default:''"`
	CreatedAt        time.Time
	DeliveredAt      *time.Time
	Version          int `gorm:"not null"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	restored, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &restored, nil
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:               aggregate.ID().Bytes(),
		TrackingID:       aggregate.TrackingID().String(),
		QRHash:           aggregate.QRHash(),
		SenderID:         aggregate.SenderID().Bytes(),
		RecipientName:    aggregate.RecipientName(),
		RecipientPhone:   aggregate.RecipientPhone(),
		PickupPartnerID:  optionalUUID(aggregate.PickupPartner()),
		DropoffPartnerID: optionalUUID(aggregate.DropoffPartner()),
		DriverID:         optionalUUID(aggregate.Driver()),
		Status:           aggregate.Status().String(),
		Weight:           aggregate.Weight(),
		Distance:         aggregate.Distance(),
		Price:            aggregate.Price().Decimal(),
		PaymentMethod:    aggregate.PaymentMethod().String(),
		IsPaid:           aggregate.IsPaid(),
		Description:      aggregate.Description(),
		Photos:           aggregate.Photos(),
		DeliveryProof:    aggregate.DeliveryProof(),
		Rating:           aggregate.Rating(),
		Review:           aggregate.Review(),
		CreatedAt:        aggregate.CreatedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database row to a parcel aggregate using
// RestoreParcel, re-validating the domain invariants on the way in.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	trackingID, err := parcel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := parcel.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}
	pickupPartnerID, err := optionalDomainUUID(dto.PickupPartnerID)
	if err != nil {
		return nil, err
	}
	dropoffPartnerID, err := optionalDomainUUID(dto.DropoffPartnerID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalDomainUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(parcel.RestoreParcelParams{
		ID:               id,
		TrackingID:       trackingID,
		SenderID:         senderID,
		RecipientName:    dto.RecipientName,
		RecipientPhone:   dto.RecipientPhone,
		PickupPartnerID:  pickupPartnerID,
		DropoffPartnerID: dropoffPartnerID,
		DriverID:         driverID,
		Status:           status,
		Weight:           dto.Weight,
		Distance:         dto.Distance,
		Price:            price,
		PaymentMethod:    paymentMethod,
		IsPaid:           dto.IsPaid,
		Description:      dto.Description,
		Photos:           dto.Photos,
		DeliveryProof:    dto.DeliveryProof,
		Rating:           dto.Rating,
		Review:           dto.Review,
		CreatedAt:        dto.CreatedAt,
		DeliveredAt:      dto.DeliveredAt,
		Version:          dto.Version,
	})
}
