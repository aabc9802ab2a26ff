package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetParcelsBySenderQueryIsNotConstructed = errors.New(
		"GetParcelsBySenderQuery must be created via NewGetParcelsBySenderQuery constructor",
	)
)

// GetParcelsBySenderQuery retrieves all parcels a user has sent, newest
// first. Backs the sender's dashboard listing.
type GetParcelsBySenderQuery struct {
	senderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelsBySenderQuery creates a query for a sender's parcels.
func NewGetParcelsBySenderQuery(senderID kernel.UUID) (GetParcelsBySenderQuery, error) {
	if err := senderID.Validate(); err != nil {
		return GetParcelsBySenderQuery{}, err
	}

	return GetParcelsBySenderQuery{
		senderID: senderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsBySenderQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsBySenderQueryIsNotConstructed)
}

// SenderID returns the sender to list parcels for.
func (q GetParcelsBySenderQuery) SenderID() kernel.UUID {
	return q.senderID
}
