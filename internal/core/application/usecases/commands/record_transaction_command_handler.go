package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/notification"
	"parceltrack/internal/core/domain/model/wallet"
)

// RecordTransactionCommandHandler handles wallet ledger writes. The ledger
// entry and the balance adjustment happen in one transaction, and the
// balance moves through a single atomic in-database increment, so two
// concurrent deposits both land in full.
type RecordTransactionCommandHandler struct {
	uowFactory WalletUoWFactory
}

// NewRecordTransactionCommandHandler creates a handler for ledger writes.
// Requires a WalletUoWFactory for transactional persistence.
func NewRecordTransactionCommandHandler(uowFactory WalletUoWFactory) RecordTransactionCommandHandler {
	return RecordTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ledger command. Pending and failed entries only
// append to the ledger; completed deposits, refunds, payments, and
// withdrawals also move the balance.
func (h *RecordTransactionCommandHandler) Handle(ctx context.Context, cmd RecordTransactionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	transaction, err := wallet.NewTransaction(
		cmd.UserID(),
		cmd.ParcelID(),
		cmd.Type(),
		cmd.Amount(),
		cmd.Status(),
		cmd.Description(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	walletRepo := uow.WalletRepository()
	if err = walletRepo.AddTransaction(ctx, transaction); err != nil {
		return err
	}

	if transaction.AffectsBalance() {
		err = walletRepo.AdjustBalance(ctx, cmd.UserID(), cmd.Amount(), transaction.IsCredit())
		if err != nil {
			return err
		}
	}

	note, err := notification.NewNotification(
		cmd.UserID(),
		cmd.ParcelID(),
		"Wallet transaction",
		fmt.Sprintf("%s of %s ETB is %s", cmd.Type().String(), cmd.Amount().String(), cmd.Status().String()),
	)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
