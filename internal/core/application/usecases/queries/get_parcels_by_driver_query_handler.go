package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsByDriverQueryHandler lists a driver's assigned parcels from
// the database, newest first.
type GetParcelsByDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsByDriverQueryHandler creates a handler for driver listings.
// Requires a GORM database connection for query execution.
func NewGetParcelsByDriverQueryHandler(db *gorm.DB) GetParcelsByDriverQueryHandler {
	return GetParcelsByDriverQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetParcelsByDriverQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsByDriverQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelResponse, 0)
	for rows.Next() {
		parcelResp, scanErr := scanParcelRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, parcelResp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
