package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommandParams carries the request to register a new parcel.
// ParcelID, SenderID, SenderRole, RecipientName, RecipientPhone, Weight,
// Price and PaymentMethod are required; the rest is optional context.
type CreateParcelCommandParams struct {
	ParcelID         kernel.UUID
	SenderID         kernel.UUID
	SenderRole       parcel.ActorRole
	RecipientName    string
	RecipientPhone   string
	Weight           decimal.Decimal
	Price            kernel.Money
	PaymentMethod    parcel.PaymentMethod
	PickupPartnerID  *kernel.UUID
	DropoffPartnerID *kernel.UUID
	Description      string
	Photos           []string
	Distance         *decimal.Decimal
}

// CreateParcelCommand represents a request to register a new parcel.
// The parcel starts in the pending state with a freshly minted tracking id
// and a first audit event recording its creation.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(CreateParcelCommandParams{
//	    ParcelID:       kernel.NewUUID(),
//	    SenderID:       senderID,
//	    SenderRole:     parcel.RoleCustomer,
//	    RecipientName:  "Abebe Kebede",
//	    RecipientPhone: "+251911000000",
//	    Weight:         decimal.NewFromFloat(2.5),
//	    Price:          price,
//	    PaymentMethod:  parcel.PaymentWallet,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	params CreateParcelCommandParams

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// The full set of domain invariants is enforced later by the aggregate
// constructor; here only the identities and enumerations are checked, so
// an obviously malformed request never reaches the transaction.
func NewCreateParcelCommand(params CreateParcelCommandParams) (CreateParcelCommand, error) {
	if err := errors.Join(
		params.ParcelID.Validate(),
		params.SenderID.Validate(),
		params.SenderRole.Validate(),
		params.PaymentMethod.Validate(),
		params.Price.Validate(),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// Params returns the full request payload.
func (c CreateParcelCommand) Params() CreateParcelCommandParams {
	return c.params
}
