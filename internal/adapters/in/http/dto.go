// Package http exposes the tracking subsystem over a REST API built on
// Echo. Request bodies are validated with go-playground/validator before
// they reach the application layer; error responses map the domain error
// taxonomy onto HTTP status codes.
package http

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to Echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a request validator with struct tag validation.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateParcelRequest is the payload of POST /api/parcels.
type CreateParcelRequest struct {
	SenderID         string   `json:"senderId" validate:"required,uuid4"`
	SenderRole       string   `json:"senderRole" validate:"required"`
	RecipientName    string   `json:"recipientName" validate:"required"`
	RecipientPhone   string   `json:"recipientPhone" validate:"required"`
	Weight           string   `json:"weight" validate:"required"`
	Price            string   `json:"price" validate:"required"`
	PaymentMethod    string   `json:"paymentMethod" validate:"required"`
	PickupPartnerID  *string  `json:"pickupPartnerId,omitempty" validate:"omitempty,uuid4"`
	DropoffPartnerID *string  `json:"dropoffPartnerId,omitempty" validate:"omitempty,uuid4"`
	Description      string   `json:"description,omitempty"`
	Photos           []string `json:"photos,omitempty"`
	Distance         *string  `json:"distance,omitempty"`
}

// CreateParcelResponse echoes the identity minted for a new parcel.
type CreateParcelResponse struct {
	ID         string `json:"id"`
	TrackingID string `json:"trackingId"`
	QRHash     string `json:"qrHash"`
}

// UpdateParcelStatusRequest is the payload of PATCH /api/parcels/:id/status.
type UpdateParcelStatusRequest struct {
	Status    string  `json:"status" validate:"required"`
	ActorID   string  `json:"actorId" validate:"required,uuid4"`
	ActorRole string  `json:"actorRole" validate:"required"`
	Location  string  `json:"location,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	Proof     string  `json:"proof,omitempty"`
	DriverID  *string `json:"driverId,omitempty" validate:"omitempty,uuid4"`
}

// AssignDriverRequest is the payload of POST /api/parcels/:id/driver.
type AssignDriverRequest struct {
	DriverID string `json:"driverId" validate:"required,uuid4"`
}

// RecordTransactionRequest is the payload of POST /api/transactions.
type RecordTransactionRequest struct {
	UserID      string  `json:"userId" validate:"required,uuid4"`
	ParcelID    *string `json:"parcelId,omitempty" validate:"omitempty,uuid4"`
	Type        string  `json:"type" validate:"required"`
	Amount      string  `json:"amount" validate:"required"`
	Status      string  `json:"status" validate:"required"`
	Description string  `json:"description,omitempty"`
}

// Parcel is the read model of a parcel returned by the listing and
// tracking endpoints.
type Parcel struct {
	ID             string     `json:"id"`
	TrackingID     string     `json:"trackingId"`
	QRHash         string     `json:"qrHash"`
	SenderID       string     `json:"senderId"`
	RecipientName  string     `json:"recipientName"`
	RecipientPhone string     `json:"recipientPhone"`
	DriverID       *string    `json:"driverId,omitempty"`
	Status         string     `json:"status"`
	Weight         string     `json:"weight"`
	Price          string     `json:"price"`
	PaymentMethod  string     `json:"paymentMethod"`
	IsPaid         bool       `json:"isPaid"`
	Description    string     `json:"description,omitempty"`
	DeliveryProof  string     `json:"deliveryProof,omitempty"`
	Rating         *int       `json:"rating,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	DeliveredAt    *time.Time `json:"deliveredAt,omitempty"`
}

// TimelineEvent is one audit trail entry of the tracking timeline.
type TimelineEvent struct {
	ID         string    `json:"id"`
	ActorRole  string    `json:"actorRole"`
	Status     string    `json:"status"`
	Location   string    `json:"location,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Photo      string    `json:"photo,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// TrackingResponse bundles a parcel with its timeline, newest event first.
type TrackingResponse struct {
	Parcel   Parcel          `json:"parcel"`
	Timeline []TimelineEvent `json:"timeline"`
}

// Transaction is the read model of one wallet ledger entry.
type Transaction struct {
	ID          string    `json:"id"`
	ParcelID    *string   `json:"parcelId,omitempty"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WalletResponse bundles a user's ledger with the current balance.
type WalletResponse struct {
	Balance      string        `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

// QRCodeResponse carries the QR image for a tracking id as a data URL.
type QRCodeResponse struct {
	TrackingID string `json:"trackingId"`
	QRHash     string `json:"qrHash"`
	QRCode     string `json:"qrCode"`
}
