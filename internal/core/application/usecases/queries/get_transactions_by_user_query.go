package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetTransactionsByUserQueryIsNotConstructed = errors.New(
		"GetTransactionsByUserQuery must be created via NewGetTransactionsByUserQuery constructor",
	)
)

// GetTransactionsByUserQuery retrieves a user's wallet ledger, newest
// first, together with the current balance.
type GetTransactionsByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransactionsByUserQuery creates a query for a user's ledger.
func NewGetTransactionsByUserQuery(userID kernel.UUID) (GetTransactionsByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetTransactionsByUserQuery{}, err
	}

	return GetTransactionsByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionsByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionsByUserQueryIsNotConstructed)
}

// UserID returns the wallet owner to list the ledger for.
func (q GetTransactionsByUserQuery) UserID() kernel.UUID {
	return q.userID
}

// TransactionResponse is the flat read model of one ledger entry.
type TransactionResponse struct {
	ID          kernel.UUID
	ParcelID    *kernel.UUID
	Type        string
	Amount      string
	Status      string
	Description string
	CreatedAt   time.Time
}

// GetTransactionsByUserQueryResponse bundles the ledger with the balance
// it has produced.
type GetTransactionsByUserQueryResponse struct {
	Balance      string
	Transactions []TransactionResponse
}
