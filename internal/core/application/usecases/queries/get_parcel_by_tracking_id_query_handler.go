package queries

import (
	"context"
	"database/sql"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// parcelColumns is the projection shared by the parcel queries; the scan
// order in scanParcelRow must match it.
const parcelColumns = `
	id,
	tracking_id,
	qr_hash,
	sender_id,
	recipient_name,
	recipient_phone,
	driver_id,
	status,
	weight,
	price,
	payment_method,
	is_paid,
	description,
	delivery_proof,
	rating,
	created_at,
	delivered_at
`

func scanParcelRow(rows *sql.Rows) (ParcelResponse, error) {
	var resp ParcelResponse
	var id, senderID uuid.UUID
	var driverID uuid.NullUUID
	var weight, price decimal.Decimal
	var rating sql.NullInt64
	var deliveredAt sql.NullTime

	err := rows.Scan(
		&id,
		&resp.TrackingID,
		&resp.QRHash,
		&senderID,
		&resp.RecipientName,
		&resp.RecipientPhone,
		&driverID,
		&resp.Status,
		&weight,
		&price,
		&resp.PaymentMethod,
		&resp.IsPaid,
		&resp.Description,
		&resp.DeliveryProof,
		&rating,
		&resp.CreatedAt,
		&deliveredAt,
	)
	if err != nil {
		return ParcelResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if driverID.Valid {
		driver, driverErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if driverErr != nil {
			return ParcelResponse{}, driverErr
		}
		resp.DriverID = &driver
	}
	resp.Weight = weight.String()
	resp.Price = price.StringFixed(2)
	if rating.Valid {
		value := int(rating.Int64)
		resp.Rating = &value
	}
	if deliveredAt.Valid {
		at := deliveredAt.Time
		resp.DeliveredAt = &at
	}

	return resp, nil
}

// GetParcelByTrackingIDQueryHandler serves the public tracking page lookup.
// Reads the parcel row and its audit trail newest first.
type GetParcelByTrackingIDQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByTrackingIDQueryHandler creates a handler for tracking id
// lookups. Requires a GORM database connection for query execution.
func NewGetParcelByTrackingIDQueryHandler(db *gorm.DB) GetParcelByTrackingIDQueryHandler {
	return GetParcelByTrackingIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no parcel
// carries the tracking id.
func (h GetParcelByTrackingIDQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByTrackingIDQuery,
) (GetParcelByTrackingIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelByTrackingIDQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE tracking_id = ?
	`, query.TrackingID()).Rows()
	if err != nil {
		return GetParcelByTrackingIDQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetParcelByTrackingIDQueryResponse{}, err
		}
		return GetParcelByTrackingIDQueryResponse{},
			errs.NewObjectNotFoundError("trackingId", query.TrackingID())
	}

	parcelResp, err := scanParcelRow(rows)
	if err != nil {
		return GetParcelByTrackingIDQueryResponse{}, err
	}
	if err = rows.Close(); err != nil {
		return GetParcelByTrackingIDQueryResponse{}, err
	}

	timeline, err := h.timeline(ctx, parcelResp.ID)
	if err != nil {
		return GetParcelByTrackingIDQueryResponse{}, err
	}

	return GetParcelByTrackingIDQueryResponse{
		Parcel:   parcelResp,
		Timeline: timeline,
	}, nil
}

func (h GetParcelByTrackingIDQueryHandler) timeline(
	ctx context.Context,
	parcelID kernel.UUID,
) ([]TimelineEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			actor_role,
			status,
			location,
			notes,
			photo,
			occurred_at
		FROM parcel_events
		WHERE parcel_id = ?
		ORDER BY occurred_at DESC
	`, parcelID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timeline := make([]TimelineEventResponse, 0)
	for rows.Next() {
		var event TimelineEventResponse
		var id uuid.UUID
		var occurredAt time.Time

		err = rows.Scan(
			&id,
			&event.ActorRole,
			&event.Status,
			&event.Location,
			&event.Notes,
			&event.Photo,
			&occurredAt,
		)
		if err != nil {
			return nil, err
		}

		if event.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		event.OccurredAt = occurredAt
		timeline = append(timeline, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return timeline, nil
}
