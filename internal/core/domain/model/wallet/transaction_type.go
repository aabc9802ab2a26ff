package wallet

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// TransactionType classifies a ledger entry by purpose and direction.
type TransactionType int

const (
	TypeUnknown TransactionType = iota
	// TypeDeposit credits the wallet from an external payment channel.
	TypeDeposit
	// TypeWithdrawal debits the wallet towards an external account.
	TypeWithdrawal
	// TypePayment debits the wallet to pay for a delivery.
	TypePayment
	// TypeRefund credits the wallet back after a failed delivery.
	TypeRefund
	// TypeCommission records the platform's cut, informational only.
	TypeCommission
)

var typeNames = map[TransactionType]string{
	TypeDeposit:    "deposit",
	TypeWithdrawal: "withdrawal",
	TypePayment:    "payment",
	TypeRefund:     "refund",
	TypeCommission: "commission",
}

// TransactionTypeFromString parses the wire representation of a type.
func TransactionTypeFromString(raw string) (TransactionType, error) {
	for transactionType, name := range typeNames {
		if name == raw {
			return transactionType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("transactionType",
		fmt.Errorf("%q is not a valid transaction type", raw))
}

// Validate ensures the type is one of the known values.
func (t TransactionType) Validate() error {
	if _, ok := typeNames[t]; !ok {
		return errs.NewValueIsInvalidError("transactionType")
	}
	return nil
}

// String returns the wire representation of the type.
func (t TransactionType) String() string {
	return typeNames[t]
}

// TransactionStatus is the settlement status of a ledger entry.
type TransactionStatus int

const (
	StatusUnknown TransactionStatus = iota
	// StatusPending marks an entry awaiting settlement by the payment
	// channel.
	StatusPending
	// StatusCompleted marks a settled entry reflected in the balance.
	StatusCompleted
	// StatusFailed marks an entry the payment channel rejected.
	StatusFailed
)

var statusNames = map[TransactionStatus]string{
	StatusPending:   "pending",
	StatusCompleted: "completed",
	StatusFailed:    "failed",
}

// TransactionStatusFromString parses the wire representation of a status.
func TransactionStatusFromString(raw string) (TransactionStatus, error) {
	for status, name := range statusNames {
		if name == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("transactionStatus",
		fmt.Errorf("%q is not a valid transaction status", raw))
}

// Validate ensures the status is one of the known values.
func (s TransactionStatus) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("transactionStatus")
	}
	return nil
}

// String returns the wire representation of the status.
func (s TransactionStatus) String() string {
	return statusNames[s]
}
