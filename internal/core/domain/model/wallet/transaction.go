package wallet

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrTransactionIsNotConstructed is returned when a Transaction instance
	// was not created through NewTransaction or RestoreTransaction.
	ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction or RestoreTransaction")
)

// Transaction is one entry of a user's wallet ledger. Like audit events,
// ledger entries are append-only: the wallet balance is adjusted atomically
// alongside the insert, never recomputed by rewriting history.
type Transaction struct {
	id              kernel.UUID
	userID          kernel.UUID
	parcelID        *kernel.UUID
	transactionType TransactionType
	amount          kernel.Money
	status          TransactionStatus
	description     string
	createdAt       time.Time

	isConstructed bool
}

// NewTransaction records a ledger entry for a user. The amount must be
// strictly positive; the direction is carried by the transaction type.
// A parcel reference is optional and links payments to deliveries.
func NewTransaction(
	userID kernel.UUID,
	parcelID *kernel.UUID,
	transactionType TransactionType,
	amount kernel.Money,
	status TransactionStatus,
	description string,
) (*Transaction, error) {
	if err := errors.Join(
		userID.Validate(),
		transactionType.Validate(),
		amount.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if parcelID != nil {
		if err := parcelID.Validate(); err != nil {
			return nil, err
		}
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	return &Transaction{
		id:              kernel.NewUUID(),
		userID:          userID,
		parcelID:        parcelID,
		transactionType: transactionType,
		amount:          amount,
		status:          status,
		description:     description,
		createdAt:       time.Now().UTC(),
		isConstructed:   true,
	}, nil
}

// RestoreTransactionParams carries the persisted state of a ledger entry.
type RestoreTransactionParams struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	ParcelID    *kernel.UUID
	Type        TransactionType
	Amount      kernel.Money
	Status      TransactionStatus
	Description string
	CreatedAt   time.Time
}

// RestoreTransaction reconstructs a ledger entry from persistence.
func RestoreTransaction(params RestoreTransactionParams) (*Transaction, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.UserID.Validate(),
		params.Type.Validate(),
		params.Amount.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Transaction{
		id:              params.ID,
		userID:          params.UserID,
		parcelID:        params.ParcelID,
		transactionType: params.Type,
		amount:          params.Amount,
		status:          params.Status,
		description:     params.Description,
		createdAt:       params.CreatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Transaction instance was properly constructed.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// IsEqual compares two transactions by identity.
func (t *Transaction) IsEqual(other *Transaction) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// UserID returns the wallet owner's identifier.
func (t *Transaction) UserID() kernel.UUID {
	return t.userID
}

// ParcelID returns the linked parcel's identifier, nil if none.
func (t *Transaction) ParcelID() *kernel.UUID {
	return t.parcelID
}

// Type returns the ledger entry's direction and purpose.
func (t *Transaction) Type() TransactionType {
	return t.transactionType
}

// Amount returns the transferred amount, always positive.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// Status returns the settlement status of the entry.
func (t *Transaction) Status() TransactionStatus {
	return t.status
}

// Description returns the human-readable purpose of the entry.
func (t *Transaction) Description() string {
	return t.description
}

// CreatedAt returns when the entry was recorded.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// AffectsBalance reports whether the entry moves the wallet balance:
// deposits and refunds credit it, payments and withdrawals debit it.
// Commission entries are informational and leave the balance untouched.
func (t *Transaction) AffectsBalance() bool {
	return t.status == StatusCompleted && t.transactionType != TypeCommission
}

// IsCredit reports whether the entry increases the wallet balance.
func (t *Transaction) IsCredit() bool {
	return t.transactionType == TypeDeposit || t.transactionType == TypeRefund
}
