// Package walletrepo provides data transfer objects and mapping functions
// for the wallet ledger. The ledger itself is append-only; the balance is
// a separate row moved only by atomic in-database increments.
package walletrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDTO represents the database structure for ledger entries.
type TransactionDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	ParcelID    *uuid.UUID      `gorm:"type:uuid"`
	Type        string          `gorm:"size:32;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      string          `gorm:"size:32;not null"`
	Description string          `gorm:"not null;default:''"`
	CreatedAt   time.Time       `gorm:"index;not null"`
}

// TableName specifies the database table name for ledger entries.
func (TransactionDTO) TableName() string {
	return "transactions"
}

// WalletAccountDTO represents the balance row of one user's wallet.
type WalletAccountDTO struct {
	UserID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Balance decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for wallet balances.
func (WalletAccountDTO) TableName() string {
	return "wallet_accounts"
}

func fromDomain(transaction *wallet.Transaction) TransactionDTO {
	var parcelID *uuid.UUID
	if id := transaction.ParcelID(); id != nil {
		raw := id.Bytes()
		parcelID = &raw
	}

	return TransactionDTO{
		ID:          transaction.ID().Bytes(),
		UserID:      transaction.UserID().Bytes(),
		ParcelID:    parcelID,
		Type:        transaction.Type().String(),
		Amount:      transaction.Amount().Decimal(),
		Status:      transaction.Status().String(),
		Description: transaction.Description(),
		CreatedAt:   transaction.CreatedAt(),
	}
}

func toDomain(dto TransactionDTO) (*wallet.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	var parcelID *kernel.UUID
	if dto.ParcelID != nil {
		linked, linkErr := kernel.UUIDFromBytes((*dto.ParcelID)[:])
		if linkErr != nil {
			return nil, linkErr
		}
		parcelID = &linked
	}
	transactionType, err := wallet.TransactionTypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := wallet.TransactionStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoneyFromDecimal(dto.Amount)
	if err != nil {
		return nil, err
	}

	return wallet.RestoreTransaction(wallet.RestoreTransactionParams{
		ID:          id,
		UserID:      userID,
		ParcelID:    parcelID,
		Type:        transactionType,
		Amount:      amount,
		Status:      status,
		Description: dto.Description,
		CreatedAt:   dto.CreatedAt,
	})
}
