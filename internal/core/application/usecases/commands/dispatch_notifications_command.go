package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
		"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
	)
)

// DispatchNotificationsCommand represents a request to push one batch of
// queued outbox entries to connected clients.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a dispatch command for a batch of
// at most batchSize entries.
func NewDispatchNotificationsCommand(batchSize int) (DispatchNotificationsCommand, error) {
	if batchSize <= 0 {
		return DispatchNotificationsCommand{}, errs.NewValueIsInvalidErrorWithCause("batchSize",
			fmt.Errorf("%d is not greater than 0", batchSize))
	}

	return DispatchNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of entries to push in one pass.
func (c DispatchNotificationsCommand) BatchSize() int {
	return c.batchSize
}
