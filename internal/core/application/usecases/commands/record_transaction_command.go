package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrRecordTransactionCommandIsNotConstructed = errors.New(
		"RecordTransactionCommand must be created via NewRecordTransactionCommand constructor",
	)
)

// RecordTransactionCommand represents a request to append a wallet ledger
// entry. Completed entries also move the owner's balance.
//
// Example:
//
//	amount, _ := kernel.NewMoneyFromString("500.00")
//	cmd, err := NewRecordTransactionCommand(
//	    userID, nil, wallet.TypeDeposit, amount,
//	    wallet.StatusCompleted, "wallet top-up",
//	)
type RecordTransactionCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	parcelID        *kernel.UUID
	transactionType wallet.TransactionType
	amount          kernel.Money
	status          wallet.TransactionStatus
	description     string

	guard guard.ConstructorGuard
}

// NewRecordTransactionCommand creates a command to append a ledger entry.
// The amount must be strictly positive; direction comes from the type.
func NewRecordTransactionCommand(
	userID kernel.UUID,
	parcelID *kernel.UUID,
	transactionType wallet.TransactionType,
	amount kernel.Money,
	status wallet.TransactionStatus,
	description string,
) (RecordTransactionCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		transactionType.Validate(),
		amount.Validate(),
		status.Validate(),
	); err != nil {
		return RecordTransactionCommand{}, err
	}
	if parcelID != nil {
		if err := parcelID.Validate(); err != nil {
			return RecordTransactionCommand{}, err
		}
	}
	if !amount.IsPositive() {
		return RecordTransactionCommand{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	return RecordTransactionCommand{
		userID:          userID,
		parcelID:        parcelID,
		transactionType: transactionType,
		amount:          amount,
		status:          status,
		description:     description,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordTransactionCommand) Validate() error {
	return c.guard.Validate(ErrRecordTransactionCommandIsNotConstructed)
}

// UserID returns the wallet owner's identifier.
func (c RecordTransactionCommand) UserID() kernel.UUID {
	return c.userID
}

// ParcelID returns the linked parcel's identifier, nil if none.
func (c RecordTransactionCommand) ParcelID() *kernel.UUID {
	return c.parcelID
}

// Type returns the ledger entry's direction and purpose.
func (c RecordTransactionCommand) Type() wallet.TransactionType {
	return c.transactionType
}

// Amount returns the transferred amount.
func (c RecordTransactionCommand) Amount() kernel.Money {
	return c.amount
}

// Status returns the settlement status of the entry.
func (c RecordTransactionCommand) Status() wallet.TransactionStatus {
	return c.status
}

// Description returns the human-readable purpose of the entry.
func (c RecordTransactionCommand) Description() string {
	return c.description
}
