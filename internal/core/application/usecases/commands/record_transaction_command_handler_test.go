package commands_test

import (
	"errors"
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/wallet"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func depositCommand(t *testing.T, status wallet.TransactionStatus) commands.RecordTransactionCommand {
	t.Helper()

	amount, err := kernel.NewMoneyFromString("500.00")
	require.NoError(t, err)
	cmd, err := commands.NewRecordTransactionCommand(
		kernel.NewUUID(), nil, wallet.TypeDeposit, amount, status, "top-up")
	require.NoError(t, err)
	return cmd
}

func TestRecordTransactionCommandHandler_Handle_CompletedDeposit(t *testing.T) {
	ctx := t.Context()
	cmd := depositCommand(t, wallet.StatusCompleted)

	walletRepo := new(MockWalletRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockWalletUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("AddTransaction", mock.Anything, mock.AnythingOfType("*wallet.Transaction")).Return(nil).Once(),
		walletRepo.On("AdjustBalance", mock.Anything, cmd.UserID(), cmd.Amount(), true).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordTransactionCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	walletRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordTransactionCommandHandler_Handle_PendingDepositLeavesBalance(t *testing.T) {
	ctx := t.Context()
	cmd := depositCommand(t, wallet.StatusPending)

	walletRepo := new(MockWalletRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockWalletUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("AddTransaction", mock.Anything, mock.AnythingOfType("*wallet.Transaction")).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordTransactionCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	walletRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordTransactionCommandHandler_Handle_AdjustBalanceError(t *testing.T) {
	ctx := t.Context()
	cmd := depositCommand(t, wallet.StatusCompleted)

	walletRepo := new(MockWalletRepository)
	uow := new(MockWalletUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("AddTransaction", mock.Anything, mock.AnythingOfType("*wallet.Transaction")).Return(nil).Once(),
		walletRepo.On("AdjustBalance", mock.Anything, cmd.UserID(), cmd.Amount(), true).Return(errors.New("balance error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordTransactionCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRecordTransactionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecordTransactionCommand{} // not constructed properly
	factory := new(MockWalletUoWFactory)
	h := commands.NewRecordTransactionCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
