package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsBySenderQueryHandler lists a sender's parcels from the
// database, newest first.
type GetParcelsBySenderQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsBySenderQueryHandler creates a handler for sender listings.
// Requires a GORM database connection for query execution.
func NewGetParcelsBySenderQueryHandler(db *gorm.DB) GetParcelsBySenderQueryHandler {
	return GetParcelsBySenderQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetParcelsBySenderQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsBySenderQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE sender_id = ?
		ORDER BY created_at DESC
	`, query.SenderID().String()).Rows()
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
