package queries

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTransactionsByUserQueryHandler reads a user's wallet ledger and the
// balance it has produced.
type GetTransactionsByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionsByUserQueryHandler creates a handler for ledger
// listings. Requires a GORM database connection for query execution.
func NewGetTransactionsByUserQueryHandler(db *gorm.DB) GetTransactionsByUserQueryHandler {
	return GetTransactionsByUserQueryHandler{db: db}
}

// Handle executes the ledger query. A user with no wallet activity yet
// gets a zero balance and an empty ledger rather than an error.
func (h GetTransactionsByUserQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionsByUserQuery,
) (GetTransactionsByUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTransactionsByUserQueryResponse{}, err
	}

	balance := decimal.Zero
	balanceRows, err := h.db.WithContext(ctx).Raw(`
		SELECT balance
		FROM wallet_accounts
		WHERE user_id = ?
	`, query.UserID().String()).Rows()
	if err != nil {
		return GetTransactionsByUserQueryResponse{}, err
	}
	if balanceRows.Next() {
		if err = balanceRows.Scan(&balance); err != nil {
			balanceRows.Close()
			return GetTransactionsByUserQueryResponse{}, err
		}
	}
	if err = balanceRows.Err(); err != nil {
		balanceRows.Close()
		return GetTransactionsByUserQueryResponse{}, err
	}
	balanceRows.Close()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			type,
			amount,
			status,
			description,
			created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().String()).Rows()
	if err != nil {
		return GetTransactionsByUserQueryResponse{}, err
	}
	defer rows.Close()

	transactions := make([]TransactionResponse, 0)
	for rows.Next() {
		var entry TransactionResponse
		var id uuid.UUID
		var parcelID uuid.NullUUID
		var amount decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&parcelID,
			&entry.Type,
			&amount,
			&entry.Status,
			&entry.Description,
			&createdAt,
		)
		if err != nil {
			return GetTransactionsByUserQueryResponse{}, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetTransactionsByUserQueryResponse{}, err
		}
		if parcelID.Valid {
			linked, linkErr := kernel.UUIDFromBytes(parcelID.UUID[:])
			if linkErr != nil {
				return GetTransactionsByUserQueryResponse{}, linkErr
			}
			entry.ParcelID = &linked
		}
		entry.Amount = amount.StringFixed(2)
		entry.CreatedAt = createdAt
		transactions = append(transactions, entry)
	}
	if err = rows.Err(); err != nil {
		return GetTransactionsByUserQueryResponse{}, err
	}

	return GetTransactionsByUserQueryResponse{
		Balance:      balance.StringFixed(2),
		Transactions: transactions,
	}, nil
}
