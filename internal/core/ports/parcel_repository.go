package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// Fails with a duplicate error if the tracking id is already taken.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The stored version must match the aggregate's version; on mismatch
	// the update fails with a version error and writes nothing.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingID retrieves a parcel by its public tracking identifier.
	GetByTrackingID(ctx context.Context, trackingID parcel.TrackingID) (*parcel.Parcel, error)
}

// ParcelEventRepository defines the persistence contract for the
// append-only audit trail. Events are only ever inserted and read.
type ParcelEventRepository interface {
	// Add appends an audit event to a parcel's trail.
	Add(ctx context.Context, event *parcel.Event) error

	// ListByParcel retrieves a parcel's trail newest first, the order the
	// tracking timeline is displayed in.
	ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Event, error)

	// ListByParcelChronological retrieves a parcel's trail oldest first,
	// the order replay consumes it in.
	ListByParcelChronological(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Event, error)
}
