package kernel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoneyFromString, NewMoneyFromDecimal, or ZeroMoney")

// Money is a value object representing a non-negative monetary amount with
// exactly two fraction digits. Arithmetic is performed on decimal values,
// never on binary floating point, so amounts do not drift.
//
// The zero value is invalid; construct through NewMoneyFromString,
// NewMoneyFromDecimal, or ZeroMoney.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("149.99")
//	if err != nil {
//	    return err
//	}
//	total := price.Add(deliveryFee)
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoneyFromString parses a decimal string such as "100.00" into Money.
// The amount must be non-negative and carry at most two fraction digits.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal wraps an existing decimal value into Money, enforcing
// the non-negative and two-fraction-digit invariants.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", d.String()))
	}
	if d.Exponent() < -2 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than 2 fraction digits", d.String()))
	}

	return Money{
		amount: d,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Decimal returns the underlying decimal value for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two fraction digits, e.g. "150.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsEqual compares two amounts numerically.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
