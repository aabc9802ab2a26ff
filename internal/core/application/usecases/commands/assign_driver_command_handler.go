package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/notification"
)

// AssignDriverCommandHandler handles driver assignment. The assignment is
// a plain aggregate update; no audit event is written because the parcel's
// status does not change.
type AssignDriverCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory ParcelUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	if err = aggregate.AssignDriver(cmd.DriverID()); err != nil {
		return err
	}

	parcelID := aggregate.ID()
	driverID := cmd.DriverID()
	note, err := notification.NewNotification(
		driverID,
		&parcelID,
		"Delivery assigned",
		fmt.Sprintf("You have been assigned parcel %s", aggregate.TrackingID().String()),
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
