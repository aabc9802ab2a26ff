package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for the wallet ledger
// and the balance it maintains.
type WalletRepository interface {
	// AddTransaction appends a ledger entry.
	AddTransaction(ctx context.Context, transaction *wallet.Transaction) error

	// AdjustBalance moves a user's wallet balance by the given signed
	// amount as a single atomic in-database increment. It never reads the
	// balance first, so concurrent adjustments cannot lose updates.
	// Debits that would take the balance below zero fail and write
	// nothing.
	AdjustBalance(ctx context.Context, userID kernel.UUID, delta kernel.Money, credit bool) error

	// Balance retrieves a user's current wallet balance.
	Balance(ctx context.Context, userID kernel.UUID) (kernel.Money, error)
}
