package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetParcelsByDriverQueryIsNotConstructed = errors.New(
		"GetParcelsByDriverQuery must be created via NewGetParcelsByDriverQuery constructor",
	)
)

// GetParcelsByDriverQuery retrieves all parcels assigned to a driver,
// newest first. Backs the driver's task list.
type GetParcelsByDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelsByDriverQuery creates a query for a driver's parcels.
func NewGetParcelsByDriverQuery(driverID kernel.UUID) (GetParcelsByDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetParcelsByDriverQuery{}, err
	}

	return GetParcelsByDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsByDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsByDriverQueryIsNotConstructed)
}

// DriverID returns the driver to list parcels for.
func (q GetParcelsByDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
