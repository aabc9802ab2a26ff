package walletrepo

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWalletRepository implements WalletRepository using GORM.
type GormWalletRepository struct {
	db *gorm.DB
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB) *GormWalletRepository {
	return &GormWalletRepository{db: db}
}

// AddTransaction appends a ledger entry.
func (r *GormWalletRepository) AddTransaction(ctx context.Context, transaction *wallet.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	dto := fromDomain(transaction)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AdjustBalance moves a user's balance by the given amount as one atomic
// in-database increment. Credits upsert the balance row so a first deposit
// needs no prior setup; debits require an existing row holding at least
// the amount, otherwise nothing is written and the adjustment fails.
func (r *GormWalletRepository) AdjustBalance(ctx context.Context, userID kernel.UUID, delta kernel.Money, credit bool) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := delta.Validate(); err != nil {
		return err
	}

	amount := delta.Decimal()

	if credit {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"balance": gorm.Expr("wallet_accounts.balance + ?", amount),
				}),
			}).
			Create(&WalletAccountDTO{UserID: userID.Bytes(), Balance: amount}).Error
	}

	result := r.db.WithContext(ctx).
		Model(&WalletAccountDTO{}).
		Where("user_id = ? AND balance >= ?", userID.Bytes(), amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewValueIsInvalidErrorWithCause("balance",
			fmt.Errorf("insufficient funds to debit %s", delta.String()))
	}

	return nil
}

// Balance retrieves a user's current wallet balance. Users without any
// wallet activity hold a zero balance.
func (r *GormWalletRepository) Balance(ctx context.Context, userID kernel.UUID) (kernel.Money, error) {
	if err := userID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var dto WalletAccountDTO
	err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.ZeroMoney(), nil
	}
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoneyFromDecimal(dto.Balance)
}
