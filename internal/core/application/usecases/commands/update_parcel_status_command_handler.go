package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/notification"
	"parceltrack/internal/core/domain/model/parcel"
)

// UpdateParcelStatusCommandHandler handles parcel lifecycle transitions.
// Loads the aggregate, applies the transition through the state machine,
// and writes the updated row, the audit event, and the sender's
// notification in one transaction. The optimistic version check in the
// repository turns concurrent updates of the same parcel into a conflict
// instead of a lost write.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for status change
// operations. Requires a ParcelUoWFactory for transactional persistence.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command. Either the parcel row update
// and the trail append both commit, or neither does.
func (h *UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	// Driver assignment goes first: it is rejected on terminal parcels,
	// and this change may be the one entering a terminal state.
	if cmd.DriverID() != nil {
		if err = aggregate.AssignDriver(*cmd.DriverID()); err != nil {
			return err
		}
	}
	if err = aggregate.ChangeStatus(cmd.Next()); err != nil {
		return err
	}
	if cmd.Next() == parcel.Delivered && cmd.Proof() != "" {
		aggregate.AttachDeliveryProof(cmd.Proof())
	}

	event, err := parcel.NewEvent(
		aggregate.ID(),
		cmd.ActorID(),
		cmd.ActorRole(),
		cmd.Next(),
		cmd.Location(),
		cmd.Notes(),
		cmd.Proof(),
	)
	if err != nil {
		return err
	}

	parcelID := aggregate.ID()
	note, err := notification.NewNotification(
		aggregate.SenderID(),
		&parcelID,
		"Parcel status updated",
		fmt.Sprintf("Parcel %s is now %s", aggregate.TrackingID().String(), cmd.Next().String()),
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.ParcelEventRepository().Add(ctx, event); err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
