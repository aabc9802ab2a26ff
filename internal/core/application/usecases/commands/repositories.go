// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface that covers the
// repositories they touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a
	// transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ParcelEventRepoFactory provides access to the audit trail repository
	// within a transaction.
	ParcelEventRepoFactory interface {
		ParcelEventRepository() ports.ParcelEventRepository
	}

	// WalletRepoFactory provides access to the wallet ledger repository
	// within a transaction.
	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	// NotificationRepoFactory provides access to the notification outbox
	// repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// ParcelUoW manages transactions for parcel lifecycle operations: the
	// aggregate, its audit trail, and the outbox entries announcing the
	// change commit together.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		ParcelEventRepoFactory
		NotificationRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// WalletUoW manages transactions for wallet ledger operations: the
	// ledger entry, the balance adjustment, and the outbox entry commit
	// together.
	WalletUoW interface {
		TxManager
		WalletRepoFactory
		NotificationRepoFactory
	}

	// WalletUoWFactory creates new wallet unit of work instances.
	WalletUoWFactory interface {
		Create() WalletUoW
	}

	// NotificationUoW manages transactions for outbox dispatch.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work
	// instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
