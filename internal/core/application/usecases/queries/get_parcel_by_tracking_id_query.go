// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read straight from the
// database into flat response structs shaped for the transport layer.
package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetParcelByTrackingIDQueryIsNotConstructed = errors.New(
		"GetParcelByTrackingIDQuery must be created via NewGetParcelByTrackingIDQuery constructor",
	)
)

// GetParcelByTrackingIDQuery retrieves one parcel and its full audit
// timeline by the public tracking identifier. This is the query behind the
// public tracking page, so it requires no authentication context.
//
// Example:
//
//	query, err := NewGetParcelByTrackingIDQuery("ADR-1718000000000-7K2M9QXZ")
//	if err != nil {
//	    return fmt.Errorf("bad tracking id: %w", err)
//	}
//	response, err := handler.Handle(ctx, query)
type GetParcelByTrackingIDQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

// NewGetParcelByTrackingIDQuery creates a query for a tracking id lookup.
func NewGetParcelByTrackingIDQuery(trackingID string) (GetParcelByTrackingIDQuery, error) {
	if trackingID == "" {
		return GetParcelByTrackingIDQuery{}, errs.NewValueIsRequiredError("trackingId")
	}

	return GetParcelByTrackingIDQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelByTrackingIDQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByTrackingIDQueryIsNotConstructed)
}

// TrackingID returns the tracking identifier to look up.
func (q GetParcelByTrackingIDQuery) TrackingID() string {
	return q.trackingID
}

// ParcelResponse is the flat read model of a parcel shared by the parcel
// queries.
type ParcelResponse struct {
	ID             kernel.UUID
	TrackingID     string
	QRHash         string
	SenderID       kernel.UUID
	RecipientName  string
	RecipientPhone string
	DriverID       *kernel.UUID
	Status         string
	Weight         string
	Price          string
	PaymentMethod  string
	IsPaid         bool
	Description    string
	DeliveryProof  string
	Rating         *int
	CreatedAt      time.Time
	DeliveredAt    *time.Time
}

// TimelineEventResponse is one audit trail entry of the tracking timeline.
type TimelineEventResponse struct {
	ID         kernel.UUID
	ActorRole  string
	Status     string
	Location   string
	Notes      string
	Photo      string
	OccurredAt time.Time
}

// GetParcelByTrackingIDQueryResponse bundles the parcel with its timeline,
// newest event first.
type GetParcelByTrackingIDQueryResponse struct {
	Parcel   ParcelResponse
	Timeline []TimelineEventResponse
}
