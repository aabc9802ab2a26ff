package eventrepo

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormParcelEventRepository implements ParcelEventRepository using GORM.
type GormParcelEventRepository struct {
	db *gorm.DB
}

// NewGormParcelEventRepository creates a new GORM audit trail repository.
func NewGormParcelEventRepository(db *gorm.DB) *GormParcelEventRepository {
	return &GormParcelEventRepository{db: db}
}

// Add appends an audit event to a parcel's trail.
func (r *GormParcelEventRepository) Add(ctx context.Context, event *parcel.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByParcel retrieves a parcel's trail newest first.
func (r *GormParcelEventRepository) ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Event, error) {
	return r.list(ctx, parcelID, "occurred_at DESC")
}

// ListByParcelChronological retrieves a parcel's trail oldest first.
func (r *GormParcelEventRepository) ListByParcelChronological(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Event, error) {
	return r.list(ctx, parcelID, "occurred_at ASC")
}

func (r *GormParcelEventRepository) list(ctx context.Context, parcelID kernel.UUID, order string) ([]*parcel.Event, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelEventDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order(order).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*parcel.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		events = append(events, event)
	}

	return events, nil
}
